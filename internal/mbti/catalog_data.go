package mbti

// defaultTypeRecords is the built-in descriptive content for the sixteen
// types. A single canonical copy: the title/subtitle/description and trait
// blurbs come from the published instrument, careers merged in per code.
var defaultTypeRecords = []TypeRecord{
	{
		Code:        "INTJ",
		Title:       "建筑师",
		Subtitle:    "富有想象力和战略性的思想家，一切皆在计划之中",
		Description: "INTJ型人格被称为'建筑师'，他们具有独特的能力将创意和决心结合起来。他们不会满足于仅仅做白日梦，而是会采取具体的步骤来实现目标，产生持久而积极的影响。",
		Characteristics: []Characteristic{
			{Title: "理性思维", Desc: "善于分析复杂问题，制定长远战略"},
			{Title: "独立自主", Desc: "喜欢独立工作，不依赖他人认可"},
			{Title: "追求完美", Desc: "对自己和他人都有很高的标准"},
			{Title: "创新能力", Desc: "能够看到别人看不到的可能性"},
		},
		Careers: []string{"战略规划师", "系统分析师", "软件架构师", "投资银行家", "科学研究员", "企业顾问"},
	},
	{
		Code:        "INTP",
		Title:       "逻辑学家",
		Subtitle:    "具有创新精神的发明家，对知识有着不可抑制的渴望",
		Description: "INTP型人格被称为'逻辑学家'，他们以其独特的观点和旺盛的智力而自豪。他们无法忍受无聊的环境，虽然他们只占人口的3%，但他们在历史上许多科学发现中都留下了不可磨灭的印记。",
		Characteristics: []Characteristic{
			{Title: "理论思维", Desc: "热爱抽象概念和理论探索"},
			{Title: "逻辑分析", Desc: "善于发现模式和逻辑关系"},
			{Title: "求知欲强", Desc: "对新知识有强烈的渴望"},
			{Title: "独立思考", Desc: "不轻易接受权威观点"},
		},
		Careers: []string{"软件开发者", "数据科学家", "研究科学家", "系统设计师", "大学教授", "逻辑学家"},
	},
	{
		Code:        "ENTJ",
		Title:       "指挥官",
		Subtitle:    "大胆、富有想象力、意志强烈的领导者，总能找到或创造解决方法",
		Description: "ENTJ型人格被称为'指挥官'，他们是天生的领导者。具有这种人格类型的人体现了领导力的天赋，以魅力和自信来团结众人为共同目标而努力。",
		Characteristics: []Characteristic{
			{Title: "天生领导", Desc: "具有强烈的领导欲望和能力"},
			{Title: "战略思维", Desc: "善于制定长期计划和策略"},
			{Title: "决断力强", Desc: "能够快速做出重要决定"},
			{Title: "目标导向", Desc: "专注于实现既定目标"},
		},
		Careers: []string{"企业高管", "管理顾问", "律师", "项目经理", "政治家", "企业家"},
	},
	{
		Code:        "ENTP",
		Title:       "辩论家",
		Subtitle:    "聪明好奇的思想家，无法抗拒智力上的挑战",
		Description: "ENTP型人格被称为'辩论家'，他们是终极的魔鬼代言人，在思辨和信念的交锋中茁壮成长。这并不是说他们是恶意的，而是说他们有一种独特的习惯，即为了辩论而辩论。",
		Characteristics: []Characteristic{
			{Title: "创新思维", Desc: "充满创意，善于提出新想法"},
			{Title: "辩论能力", Desc: "享受智力辩论和思想交锋"},
			{Title: "适应性强", Desc: "能够快速适应新环境"},
			{Title: "好奇心强", Desc: "对各种可能性充满兴趣"},
		},
		Careers: []string{"企业家", "营销策略师", "发明家", "创意总监", "风险投资家", "商业顾问"},
	},
	{
		Code:        "INFJ",
		Title:       "提倡者",
		Subtitle:    "安静而神秘，同时鼓舞人心且不知疲倦的理想主义者",
		Description: "INFJ型人格被称为'提倡者'，他们具有内在的理想主义和道德感，但真正令他们与众不同的是，他们不是空想家，而是能够采取具体步骤来实现目标，产生积极而持久影响的人。",
		Characteristics: []Characteristic{
			{Title: "理想主义", Desc: "追求有意义的人生目标"},
			{Title: "洞察力强", Desc: "能够理解他人的动机和感受"},
			{Title: "创造性", Desc: "具有丰富的想象力和创造力"},
			{Title: "坚持原则", Desc: "坚守个人价值观和信念"},
		},
		Careers: []string{"心理咨询师", "作家", "人力资源专家", "社会工作者", "教师", "艺术治疗师"},
	},
	{
		Code:        "INFP",
		Title:       "调停者",
		Subtitle:    "诗意、善良、利他主义，总是热切地寻求帮助好的事业",
		Description: "INFP型人格被称为'调停者'，他们是真正的理想主义者，总是从最坏的人和事中寻找一丝善意，并努力让事情变得更好。虽然他们可能被认为是冷静、矜持甚至害羞的，但他们内心燃烧着激情的火焰。",
		Characteristics: []Characteristic{
			{Title: "价值驱动", Desc: "行为受个人价值观强烈驱动"},
			{Title: "同理心强", Desc: "能够深刻理解他人感受"},
			{Title: "创造天赋", Desc: "在艺术和创意领域表现出色"},
			{Title: "追求和谐", Desc: "努力维护人际关系和谐"},
		},
		Careers: []string{"作家", "心理咨询师", "社会工作者", "艺术家", "设计师", "教师"},
	},
	{
		Code:        "ENFJ",
		Title:       "主人公",
		Subtitle:    "富有魅力、鼓舞人心的领导者，有能力让听众着迷",
		Description: "ENFJ型人格被称为'主人公'，他们是天生的领导者，充满激情和魅力，能够鼓舞听众为共同的利益而努力。他们往往会被政治和公共服务所吸引。",
		Characteristics: []Characteristic{
			{Title: "鼓舞他人", Desc: "能够激励和影响他人"},
			{Title: "人际敏感", Desc: "对他人需求高度敏感"},
			{Title: "组织能力", Desc: "善于组织和协调团队"},
			{Title: "利他主义", Desc: "关心他人福祉和社会进步"},
		},
		Careers: []string{"教育工作者", "人力资源经理", "公关专家", "销售经理", "市场营销总监", "职业顾问"},
	},
	{
		Code:        "ENFP",
		Title:       "竞选者",
		Subtitle:    "热情、有创造力、社交能力强，总能找到微笑的理由",
		Description: "ENFP型人格被称为'竞选者'，他们是真正自由的精神。他们通常是聚会的焦点，但与探聚光灯的类型不同，他们享受与他人的社交和情感联系。",
		Characteristics: []Characteristic{
			{Title: "热情洋溢", Desc: "对生活充满热情和活力"},
			{Title: "社交能力", Desc: "善于建立人际关系"},
			{Title: "创意丰富", Desc: "充满创新想法和可能性"},
			{Title: "鼓励他人", Desc: "能够看到他人的潜力"},
		},
		Careers: []string{"创意总监", "记者", "演员", "市场营销专家", "活动策划师", "人力资源专员"},
	},
	{
		Code:        "ISTJ",
		Title:       "物流师",
		Subtitle:    "实用主义、注重事实的可靠性，可以信赖他们完成任务",
		Description: "ISTJ型人格被称为'物流师'，他们以其可靠性而闻名。他们言出必行，当他们承诺做某事时，他们会坚持到底。这种人格类型构成了许多家庭以及我们珍视的组织的核心。",
		Characteristics: []Characteristic{
			{Title: "责任感强", Desc: "对承诺和义务非常认真"},
			{Title: "注重细节", Desc: "关注具体事实和细节"},
			{Title: "组织有序", Desc: "喜欢有序和结构化的环境"},
			{Title: "传统价值", Desc: "尊重传统和既定程序"},
		},
		Careers: []string{"财务分析师", "会计师", "项目经理", "军事人员", "法官", "审计师"},
	},
	{
		Code:        "ISFJ",
		Title:       "守护者",
		Subtitle:    "非常专注、温暖的守护者，时刻准备保护爱的人",
		Description: "ISFJ型人格被称为'守护者'，他们以其温暖的心和乐于助人的天性而闻名。他们慷慨大方，往往把他人的需要放在自己的需要之前，很少要求认可或感谢。",
		Characteristics: []Characteristic{
			{Title: "关怀他人", Desc: "天生具有照顾他人的倾向"},
			{Title: "忠诚可靠", Desc: "对朋友和家人极其忠诚"},
			{Title: "实用主义", Desc: "注重实际和可行的解决方案"},
			{Title: "谦逊低调", Desc: "不喜欢成为关注焦点"},
		},
		Careers: []string{"护士", "小学教师", "行政助理", "社会工作者", "客户服务代表", "办公室经理"},
	},
	{
		Code:        "ESTJ",
		Title:       "总经理",
		Subtitle:    "出色的管理者，在管理事物或人员方面无与伦比",
		Description: "ESTJ型人格被称为'总经理'，他们是优秀的组织者，善于管理事物和人员。他们生活在一个事实和具体现实的世界里，是天生的领导者。",
		Characteristics: []Characteristic{
			{Title: "管理能力", Desc: "天生的组织者和管理者"},
			{Title: "务实高效", Desc: "注重效率和实际结果"},
			{Title: "决断力强", Desc: "能够快速做出决定"},
			{Title: "责任心强", Desc: "对工作和义务高度负责"},
		},
		Careers: []string{"销售经理", "项目经理", "军事或警察领导", "金融经理", "行政主管", "法官"},
	},
	{
		Code:        "ESFJ",
		Title:       "执政官",
		Subtitle:    "极有同情心、受欢迎、总是热心帮助他人",
		Description: "ESFJ型人格被称为'执政官'，他们是受欢迎且慷慨的人，他们努力维护和谐的环境。他们渴望归属感和被接受，这种需求往往使他们成为受欢迎的委员会成员。",
		Characteristics: []Characteristic{
			{Title: "社交能力", Desc: "善于建立和维护人际关系"},
			{Title: "服务精神", Desc: "乐于帮助和服务他人"},
			{Title: "和谐导向", Desc: "努力维护群体和谐"},
			{Title: "传统价值", Desc: "重视传统和社会规范"},
		},
		Careers: []string{"护士", "教师", "销售代表", "公关专员", "人力资源专员", "社区服务经理"},
	},
	{
		Code:        "ISTP",
		Title:       "鉴赏家",
		Subtitle:    "大胆而实际的实验家，擅长使用各种工具",
		Description: "ISTP型人格被称为'鉴赏家'，他们天生好奇，喜欢用双手探索周围的世界。他们是天生的创造者，在各种项目中从一个想法转向另一个想法。",
		Characteristics: []Characteristic{
			{Title: "实践能力", Desc: "善于动手解决实际问题"},
			{Title: "适应性强", Desc: "能够灵活应对变化"},
			{Title: "独立自主", Desc: "喜欢独立工作和思考"},
			{Title: "冷静理性", Desc: "在压力下保持冷静"},
		},
		Careers: []string{"工程师", "技术专家", "飞行员", "法医专家", "机械师", "软件开发者"},
	},
	{
		Code:        "ISFP",
		Title:       "探险家",
		Subtitle:    "灵活、迷人的艺术家，时刻准备探索新的可能性",
		Description: "ISFP型人格被称为'探险家'，他们是真正的艺术家，但不一定是典型意义上的艺术家。对他们来说，生活就是一块画布，他们用同情心、善良和美感来表达自己。",
		Characteristics: []Characteristic{
			{Title: "艺术天赋", Desc: "具有强烈的美感和创造力"},
			{Title: "价值驱动", Desc: "行为受个人价值观指导"},
			{Title: "灵活适应", Desc: "能够适应不同环境"},
			{Title: "关怀他人", Desc: "对他人需求敏感"},
		},
		Careers: []string{"艺术家", "设计师", "音乐家", "厨师", "兽医", "美容师"},
	},
	{
		Code:        "ESTP",
		Title:       "企业家",
		Subtitle:    "聪明、精力充沛、善于感知的人，真正享受生活在边缘",
		Description: "ESTP型人格被称为'企业家'，他们总是对周围环境产生影响。在聚会中你可以通过他们的笑声找到他们，他们放松和幽默的谈话吸引着每个人。",
		Characteristics: []Characteristic{
			{Title: "行动导向", Desc: "喜欢立即行动而非长期规划"},
			{Title: "社交活跃", Desc: "在社交场合中表现活跃"},
			{Title: "实用主义", Desc: "关注当下的实际需求"},
			{Title: "冒险精神", Desc: "愿意承担风险和挑战"},
		},
		Careers: []string{"企业家", "销售代表", "市场营销专员", "运动员", "警察或消防员", "项目协调员"},
	},
	{
		Code:        "ESFP",
		Title:       "娱乐家",
		Subtitle:    "自发的、精力充沛、热情的人，生活对他们来说从不无聊",
		Description: "ESFP型人格被称为'娱乐家'，他们是自发的、精力充沛和热情的人。没有其他人格类型比他们花更多时间与朋友出去玩，他们从与他人的社交和情感联系中获得能量。",
		Characteristics: []Characteristic{
			{Title: "热情开朗", Desc: "天生乐观，感染他人"},
			{Title: "社交天赋", Desc: "善于与各种人建立联系"},
			{Title: "灵活自发", Desc: "喜欢自发的活动和体验"},
			{Title: "实用导向", Desc: "关注当下的具体需求"},
		},
		Careers: []string{"活动策划师", "销售代表", "旅游顾问", "演员", "教练", "儿童保育工作者"},
	},
}
