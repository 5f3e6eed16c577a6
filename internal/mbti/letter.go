package mbti

// Letter identifies one pole of an MBTI dimension.
type Letter string

const (
	Extraversion Letter = "E"
	Introversion Letter = "I"
	Sensing      Letter = "S"
	Intuition    Letter = "N"
	Thinking     Letter = "T"
	Feeling      Letter = "F"
	Judging      Letter = "J"
	Perceiving   Letter = "P"
)

// Dimension is one opposing letter pair. The four dimensions are resolved in
// a fixed order and their winning letters concatenated into the type code.
// First wins a pair only on a strictly greater tally; ties go to Second.
type Dimension struct {
	Name        string
	First       Letter
	Second      Letter
	FirstLabel  string
	SecondLabel string
	FirstDesc   string
	SecondDesc  string
}

// Dimensions lists the four pairs in type-code order: E/I, S/N, T/F, J/P.
var Dimensions = [4]Dimension{
	{Name: "外向 vs 内向", First: Extraversion, Second: Introversion,
		FirstLabel: "外向", SecondLabel: "内向",
		FirstDesc: "从外部世界获取能量", SecondDesc: "从内心世界获取能量"},
	{Name: "感觉 vs 直觉", First: Sensing, Second: Intuition,
		FirstLabel: "感觉", SecondLabel: "直觉",
		FirstDesc: "关注具体事实和细节", SecondDesc: "关注概念和可能性"},
	{Name: "思考 vs 情感", First: Thinking, Second: Feeling,
		FirstLabel: "思考", SecondLabel: "情感",
		FirstDesc: "基于逻辑做决定", SecondDesc: "基于价值观和感受做决定"},
	{Name: "判断 vs 知觉", First: Judging, Second: Perceiving,
		FirstLabel: "判断", SecondLabel: "知觉",
		FirstDesc: "喜欢计划和确定性", SecondDesc: "喜欢灵活和自发性"},
}

// Valid reports whether l is one of the eight MBTI letters.
func (l Letter) Valid() bool {
	switch l {
	case Extraversion, Introversion, Sensing, Intuition, Thinking, Feeling, Judging, Perceiving:
		return true
	}
	return false
}

// DimensionOf returns the dimension the letter belongs to.
func DimensionOf(l Letter) (Dimension, bool) {
	for _, d := range Dimensions {
		if d.First == l || d.Second == l {
			return d, true
		}
	}
	return Dimension{}, false
}

// samePair reports whether a and b are the two opposite poles of one dimension.
func samePair(a, b Letter) bool {
	for _, d := range Dimensions {
		if (d.First == a && d.Second == b) || (d.First == b && d.Second == a) {
			return true
		}
	}
	return false
}
