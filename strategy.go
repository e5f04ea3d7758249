package spquad

// StrategyNumber identifies the relation a scan key tests. The numbering
// follows the R-tree operator strategy numbers, which the query operator
// layer uses when handing scan keys to an index.
type StrategyNumber int

// The operator class supports Left, Right, Same, Below, Above and
// ContainedBy. The rest are listed so that the numbering is complete.
const (
	StrategyLeft        StrategyNumber = 1
	StrategyOverLeft    StrategyNumber = 2
	StrategyOverlap     StrategyNumber = 3
	StrategyOverRight   StrategyNumber = 4
	StrategyRight       StrategyNumber = 5
	StrategySame        StrategyNumber = 6
	StrategyContains    StrategyNumber = 7
	StrategyContainedBy StrategyNumber = 8
	StrategyOverBelow   StrategyNumber = 9
	StrategyBelow       StrategyNumber = 10
	StrategyAbove       StrategyNumber = 11
	StrategyOverAbove   StrategyNumber = 12
)

var strategyNames = map[StrategyNumber]string{
	StrategyLeft:        "left",
	StrategyOverLeft:    "overleft",
	StrategyOverlap:     "overlap",
	StrategyOverRight:   "overright",
	StrategyRight:       "right",
	StrategySame:        "same",
	StrategyContains:    "contains",
	StrategyContainedBy: "contained_by",
	StrategyOverBelow:   "overbelow",
	StrategyBelow:       "below",
	StrategyAbove:       "above",
	StrategyOverAbove:   "overabove",
}

func (s StrategyNumber) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// ScanKey is one condition of a query: the indexed value must stand in the
// Strategy relation to Argument.
type ScanKey struct {
	Strategy StrategyNumber
	Argument Datum
}

// PrefixType is the kind of value attached to inner nodes.
type PrefixType int

// PrefixCentroid means inner nodes carry a Centroid.
const PrefixCentroid PrefixType = 1

// LabelType is the kind of label attached to each child of an inner node.
type LabelType int

// LabelNone means children are identified by position only.
const LabelNone LabelType = 0

// Config describes the shape of the index to the host engine.
type Config struct {
	PrefixType    PrefixType
	LabelType     LabelType
	CanReturnData bool
	LongValuesOK  bool
}

// Configure gives the operator class's static configuration.
func Configure() Config {
	return Config{
		PrefixType:    PrefixCentroid,
		LabelType:     LabelNone,
		CanReturnData: true,
		LongValuesOK:  false,
	}
}
