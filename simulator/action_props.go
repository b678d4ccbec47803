package simulator

// actionProps holds the five static properties every action is defined by
// (spec.md §4.A): base CP cost, base durability cost (in the same units as
// SimulationState.Durability: 0, 5, 10 or 20), base progress/quality coefficients
// expressed in hundredths of the recipe's base_progress/base_quality, and
// time cost in seconds (TimeCost, defined on Action itself).
//
// Values follow the well-documented base costs of the crafting system this
// solver targets; actions introduced after the original constant table
// (TrainedEye, HeartAndSoul, QuickInnovation, RefinedTouch, ImmaculateMend,
// TrainedPerfection) use the publicly documented constants for their role.
type actionProps struct {
	cp            int16
	durability    int8
	progressHund  uint16
	qualityHund   uint16
	restoresCP    int16 // TricksOfTheTrade-style conditional CP refund
	restoresDur   int8  // MasterMend/ImmaculateMend durability restore
}

var props = [numActions]actionProps{
	BasicSynthesis:     {cp: 0, durability: 10, progressHund: 120},
	BasicTouch:         {cp: 18, durability: 10, qualityHund: 100},
	MasterMend:         {cp: 88, durability: 0, restoresDur: 30},
	Observe:            {cp: 7, durability: 0},
	TricksOfTheTrade:   {cp: 0, durability: 0, restoresCP: 20},
	WasteNot:           {cp: 56, durability: 0},
	Veneration:         {cp: 18, durability: 0},
	StandardTouch:      {cp: 18, durability: 10, qualityHund: 125},
	GreatStrides:       {cp: 32, durability: 0},
	Innovation:         {cp: 18, durability: 0},
	WasteNot2:          {cp: 98, durability: 0},
	ByregotsBlessing:   {cp: 24, durability: 10, qualityHund: 100},
	PreciseTouch:       {cp: 18, durability: 10, qualityHund: 150},
	MuscleMemory:       {cp: 6, durability: 10, progressHund: 300},
	CarefulSynthesis:   {cp: 7, durability: 10, progressHund: 180},
	Manipulation:       {cp: 96, durability: 0},
	PrudentTouch:       {cp: 25, durability: 5, qualityHund: 100},
	AdvancedTouch:      {cp: 18, durability: 10, qualityHund: 150},
	Reflect:            {cp: 6, durability: 10, qualityHund: 100},
	PreparatoryTouch:   {cp: 40, durability: 20, qualityHund: 200},
	Groundwork:         {cp: 18, durability: 20, progressHund: 360},
	DelicateSynthesis:  {cp: 32, durability: 10, progressHund: 100, qualityHund: 100},
	IntensiveSynthesis: {cp: 6, durability: 10, progressHund: 400},
	TrainedEye:         {cp: 250, durability: 0, qualityHund: 10000},
	HeartAndSoul:       {cp: 0, durability: 0},
	PrudentSynthesis:   {cp: 18, durability: 5, progressHund: 180},
	TrainedFinesse:     {cp: 32, durability: 0, qualityHund: 100},
	RefinedTouch:       {cp: 24, durability: 10, qualityHund: 100},
	QuickInnovation:    {cp: 0, durability: 0},
	ImmaculateMend:     {cp: 112, durability: 0, restoresDur: 127},
	TrainedPerfection:  {cp: 0, durability: 0},
}

// BaseCPCost returns a's undiscounted CP cost, before any condition or
// effect modifier. Exposed for solvers (quality, steps) that need to
// reconstruct cost relationships outside a live SimulationState.
func (a Action) BaseCPCost() int16 { return props[a].cp }

// BaseDurabilityCost returns a's undiscounted durability cost.
func (a Action) BaseDurabilityCost() int8 { return props[a].durability }

// BaseDurabilityRestore returns how much durability a restores outright
// (MasterMend, ImmaculateMend), or 0.
func (a Action) BaseDurabilityRestore() int8 { return props[a].restoresDur }
