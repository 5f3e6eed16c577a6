package mbti

// defaultQuestions is the built-in instrument: four blocks of twelve
// forced-choice items, one block per dimension, in E/I, S/N, T/F, J/P order.
var defaultQuestions = []Question{
	// 外向 / 内向
	{Text: "在社交场合中，你通常会：", Options: []Option{
		{Text: "认识很多人并与大家交谈", Letter: Extraversion},
		{Text: "与少数几个你认识的人交谈", Letter: Introversion},
	}},
	{Text: "你更喜欢：", Options: []Option{
		{Text: "参加聚会和社交活动", Letter: Extraversion},
		{Text: "独自或与一两个亲密朋友在一起的时光", Letter: Introversion},
	}},
	{Text: "当你需要在一个重要问题上做决定时，你倾向于：", Options: []Option{
		{Text: "与他人讨论以理清思路", Letter: Extraversion},
		{Text: "独自思考后再与他人分享结论", Letter: Introversion},
	}},
	{Text: "在工作或学习环境中，你更喜欢：", Options: []Option{
		{Text: "开放的协作空间，可以随时与他人交流", Letter: Extraversion},
		{Text: "安静的私人空间，可以专注思考", Letter: Introversion},
	}},
	{Text: "当你遇到问题时，你通常会：", Options: []Option{
		{Text: "立即寻求他人的建议和帮助", Letter: Extraversion},
		{Text: "先尝试自己解决，必要时才寻求帮助", Letter: Introversion},
	}},
	{Text: "你更容易：", Options: []Option{
		{Text: "在与人交流中获得能量和灵感", Letter: Extraversion},
		{Text: "在独处时获得能量和灵感", Letter: Introversion},
	}},
	{Text: "在会议或课堂上，你更可能：", Options: []Option{
		{Text: "主动发言，分享想法", Letter: Extraversion},
		{Text: "倾听他人，仅在必要时发言", Letter: Introversion},
	}},
	{Text: "你更喜欢的工作方式是：", Options: []Option{
		{Text: "团队合作，可以与他人交流想法", Letter: Extraversion},
		{Text: "独立工作，可以专注于自己的任务", Letter: Introversion},
	}},
	{Text: "当你有空闲时间时，你更倾向于：", Options: []Option{
		{Text: "外出与朋友相聚", Letter: Extraversion},
		{Text: "在家放松或进行个人爱好", Letter: Introversion},
	}},
	{Text: "你认为自己是：", Options: []Option{
		{Text: "容易接近且健谈的人", Letter: Extraversion},
		{Text: "安静且有所保留的人", Letter: Introversion},
	}},
	{Text: "在新环境中，你通常会：", Options: []Option{
		{Text: "迅速融入并结交新朋友", Letter: Extraversion},
		{Text: "慢慢观察并逐渐适应", Letter: Introversion},
	}},
	{Text: "长时间的社交活动后，你通常感到：", Options: []Option{
		{Text: "精力充沛，想继续社交", Letter: Extraversion},
		{Text: "需要独处时间来恢复精力", Letter: Introversion},
	}},

	// 感觉 / 直觉
	{Text: "你更关注：", Options: []Option{
		{Text: "具体的事实和细节", Letter: Sensing},
		{Text: "概念和可能性", Letter: Intuition},
	}},
	{Text: "你更相信：", Options: []Option{
		{Text: "直接经验和观察", Letter: Sensing},
		{Text: "理论和想象", Letter: Intuition},
	}},
	{Text: "你更喜欢处理：", Options: []Option{
		{Text: "已知的和实际的问题", Letter: Sensing},
		{Text: "新颖的和抽象的问题", Letter: Intuition},
	}},
	{Text: "你更倾向于：", Options: []Option{
		{Text: "关注现实和当下", Letter: Sensing},
		{Text: "思考未来和可能性", Letter: Intuition},
	}},
	{Text: "你更喜欢的工作是：", Options: []Option{
		{Text: "有明确步骤和具体结果的工作", Letter: Sensing},
		{Text: "允许创新和探索新方法的工作", Letter: Intuition},
	}},
	{Text: "你更喜欢的书籍或电影是：", Options: []Option{
		{Text: "基于现实或历史事件的作品", Letter: Sensing},
		{Text: "科幻、奇幻或充满想象力的作品", Letter: Intuition},
	}},
	{Text: "在学习新事物时，你更喜欢：", Options: []Option{
		{Text: "循序渐进，掌握每个具体步骤", Letter: Sensing},
		{Text: "先了解整体概念，再填补细节", Letter: Intuition},
	}},
	{Text: "你更相信：", Options: []Option{
		{Text: "实践经验和已证实的方法", Letter: Sensing},
		{Text: "直觉和创新方法", Letter: Intuition},
	}},
	{Text: "你更喜欢的老师是：", Options: []Option{
		{Text: "清晰讲解具体知识点的老师", Letter: Sensing},
		{Text: "激发思考和探索新想法的老师", Letter: Intuition},
	}},
	{Text: "在解决问题时，你更倾向于：", Options: []Option{
		{Text: "使用已证实有效的方法", Letter: Sensing},
		{Text: "尝试新颖的解决方案", Letter: Intuition},
	}},
	{Text: "你更喜欢的工作指导是：", Options: []Option{
		{Text: "具体明确的指示", Letter: Sensing},
		{Text: "概括性的方向，留有创新空间", Letter: Intuition},
	}},
	{Text: "你更关注：", Options: []Option{
		{Text: "实际应用和实用性", Letter: Sensing},
		{Text: "创新和理论可能性", Letter: Intuition},
	}},

	// 思考 / 情感
	{Text: "做决定时，你更看重：", Options: []Option{
		{Text: "逻辑和客观分析", Letter: Thinking},
		{Text: "个人价值观和对他人的影响", Letter: Feeling},
	}},
	{Text: "你更倾向于：", Options: []Option{
		{Text: "公正客观地分析情况", Letter: Thinking},
		{Text: "考虑决定对人的影响", Letter: Feeling},
	}},
	{Text: "你认为更重要的是：", Options: []Option{
		{Text: "真实，即使可能伤害他人感受", Letter: Thinking},
		{Text: "善良，避免不必要的伤害", Letter: Feeling},
	}},
	{Text: "在冲突中，你更关注：", Options: []Option{
		{Text: "找出问题的逻辑解决方案", Letter: Thinking},
		{Text: "维护关系和每个人的感受", Letter: Feeling},
	}},
	{Text: "你更欣赏他人的：", Options: []Option{
		{Text: "清晰的思维和合理的论点", Letter: Thinking},
		{Text: "强烈的同理心和情感理解", Letter: Feeling},
	}},
	{Text: "你更喜欢的领导风格是：", Options: []Option{
		{Text: "基于逻辑和公平的领导", Letter: Thinking},
		{Text: "关注团队和谐与个人需求的领导", Letter: Feeling},
	}},
	{Text: "在评估情况时，你更倾向于：", Options: []Option{
		{Text: "客观分析利弊", Letter: Thinking},
		{Text: "考虑对人的影响和价值观", Letter: Feeling},
	}},
	{Text: "你更容易被他人形容为：", Options: []Option{
		{Text: "理性和逻辑性强的人", Letter: Thinking},
		{Text: "富有同情心和理解力的人", Letter: Feeling},
	}},
	{Text: "在给予反馈时，你更倾向于：", Options: []Option{
		{Text: "直接指出问题和解决方案", Letter: Thinking},
		{Text: "先肯定优点，再委婉提出改进建议", Letter: Feeling},
	}},
	{Text: "你更看重：", Options: []Option{
		{Text: "公正和一致性", Letter: Thinking},
		{Text: "和谐与同理心", Letter: Feeling},
	}},
	{Text: "在工作中，你更关注：", Options: []Option{
		{Text: "任务完成和效率", Letter: Thinking},
		{Text: "团队合作和人际关系", Letter: Feeling},
	}},
	{Text: "你更倾向于：", Options: []Option{
		{Text: "基于原则和规则做决定", Letter: Thinking},
		{Text: "考虑特殊情况和个人需求", Letter: Feeling},
	}},

	// 判断 / 知觉
	{Text: "你更喜欢：", Options: []Option{
		{Text: "有计划和结构的生活", Letter: Judging},
		{Text: "灵活和自发的生活", Letter: Perceiving},
	}},
	{Text: "你更倾向于：", Options: []Option{
		{Text: "提前计划和安排", Letter: Judging},
		{Text: "随机应变，保持选择的开放性", Letter: Perceiving},
	}},
	{Text: "你更喜欢：", Options: []Option{
		{Text: "有明确截止日期的项目", Letter: Judging},
		{Text: "灵活时间安排的项目", Letter: Perceiving},
	}},
	{Text: "你的工作区域通常是：", Options: []Option{
		{Text: "整洁有序，物品归位", Letter: Judging},
		{Text: "创意性混乱，随手可及", Letter: Perceiving},
	}},
	{Text: "你更喜欢：", Options: []Option{
		{Text: "按计划完成任务", Letter: Judging},
		{Text: "根据灵感和兴趣行动", Letter: Perceiving},
	}},
	{Text: "你更倾向于：", Options: []Option{
		{Text: "做决定并完成事情", Letter: Judging},
		{Text: "保持选择的开放性，收集更多信息", Letter: Perceiving},
	}},
	{Text: "你更喜欢的工作方式是：", Options: []Option{
		{Text: "有明确的目标和截止日期", Letter: Judging},
		{Text: "灵活调整，根据情况变化", Letter: Perceiving},
	}},
	{Text: "你更倾向于：", Options: []Option{
		{Text: "按部就班，一步一步完成任务", Letter: Judging},
		{Text: "多任务处理，根据兴趣切换", Letter: Perceiving},
	}},
	{Text: "你更喜欢：", Options: []Option{
		{Text: "提前计划假期的每一天", Letter: Judging},
		{Text: "即兴决定，根据当时情况安排", Letter: Perceiving},
	}},
	{Text: "你更倾向于：", Options: []Option{
		{Text: "按时完成任务，避免最后冲刺", Letter: Judging},
		{Text: "在截止日期前突击完成", Letter: Perceiving},
	}},
	{Text: "你更喜欢的环境是：", Options: []Option{
		{Text: "有序、可预测的环境", Letter: Judging},
		{Text: "灵活、可变化的环境", Letter: Perceiving},
	}},
	{Text: "你更倾向于：", Options: []Option{
		{Text: "制定计划并坚持执行", Letter: Judging},
		{Text: "根据情况随时调整计划", Letter: Perceiving},
	}},
}
