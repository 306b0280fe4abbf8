package constant

type LocationStatus string

const (
	LocationStatusActive      LocationStatus = "active"
	LocationStatusInactive    LocationStatus = "inactive"
	LocationStatusMaintenance LocationStatus = "maintenance"
)

type ZoneStatus string

const (
	ZoneStatusActive   ZoneStatus = "active"
	ZoneStatusInactive ZoneStatus = "inactive"
)

type ZoneType string

const (
	ZoneTypeStorage ZoneType = "storage"
	ZoneTypeStaging ZoneType = "staging"
)

type RackStatus string

const (
	RackStatusActive   RackStatus = "active"
	RackStatusInactive RackStatus = "inactive"
)

type BinStatus string

const (
	BinStatusActive   BinStatus = "active"
	BinStatusInactive BinStatus = "inactive"
)

type BinType string

const (
	BinTypeStandard BinType = "standard"
	BinTypeOversize BinType = "oversize"
)

// OccupancyStatus is the explicit bin occupancy variant. Empty, partial
// and full are derived from quantity against capacity; blocked and
// reserved are operator-set overrides and never produced by derivation.
type OccupancyStatus string

const (
	OccupancyEmpty    OccupancyStatus = "empty"
	OccupancyPartial  OccupancyStatus = "partial"
	OccupancyFull     OccupancyStatus = "full"
	OccupancyBlocked  OccupancyStatus = "blocked"
	OccupancyReserved OccupancyStatus = "reserved"
)

type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementTransfer   MovementType = "transfer"
	MovementAdjustment MovementType = "adjustment"
)

type ReferenceType string

const (
	ReferenceReceiving     ReferenceType = "receiving"
	ReferencePurchaseOrder ReferenceType = "purchase_order"
	ReferenceManual        ReferenceType = "manual"
)

type SpaceGranularity string

const (
	GranularityBin   SpaceGranularity = "bin"
	GranularityShelf SpaceGranularity = "shelf"
	GranularityRack  SpaceGranularity = "rack"
)

// MainZoneCode is the code of the zone auto-created by structure
// generation; its presence is the re-run guard.
const MainZoneCode = "A"

const MainZoneName = "Main Zone"
