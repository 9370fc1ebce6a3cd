package careers

// careerTemplates is the fixed template set the deterministic ranker scores
// against. Base scores sit inside the documented 70-99 range; bonuses are
// clamped at 99.
var careerTemplates = []Recommendation{
	{
		Title:           "Junior Frontend Developer",
		Description:     "Learn to create user interfaces and websites using HTML, CSS, and JavaScript. Work with senior developers to build engaging web experiences.",
		SalaryRange:     "$40,000 - $65,000",
		MatchScore:      92,
		RequiredSkills:  []string{"HTML", "CSS", "JavaScript", "Git"},
		GrowthPotential: "High demand field with clear progression to senior developer roles",
	},
	{
		Title:           "Data Analyst Associate",
		Description:     "Analyze data using Excel and basic programming to help businesses make decisions. Perfect starting point for data career.",
		SalaryRange:     "$35,000 - $55,000",
		MatchScore:      88,
		RequiredSkills:  []string{"Excel", "Basic Python", "Data Visualization", "Statistics"},
		GrowthPotential: "Growing field with opportunities to advance to senior analyst or data scientist",
	},
	{
		Title:           "Marketing Coordinator",
		Description:     "Support marketing campaigns, manage social media, and help with content creation. Great entry point into marketing.",
		SalaryRange:     "$32,000 - $48,000",
		MatchScore:      85,
		RequiredSkills:  []string{"Communication", "Social Media", "Content Creation", "Analytics"},
		GrowthPotential: "Can advance to marketing manager and eventually director roles",
	},
	{
		Title:           "Junior UX Designer",
		Description:     "Learn to design user-friendly digital experiences under guidance of senior designers. Focus on wireframes and user research.",
		SalaryRange:     "$38,000 - $58,000",
		MatchScore:      87,
		RequiredSkills:  []string{"Design Software", "User Research", "Wireframing", "Communication"},
		GrowthPotential: "Creative field with advancement to senior designer and UX lead positions",
	},
	{
		Title:           "Customer Success Representative",
		Description:     "Help customers succeed with products and services. Build relationships and solve problems daily.",
		SalaryRange:     "$35,000 - $50,000",
		MatchScore:      83,
		RequiredSkills:  []string{"Communication", "Problem Solving", "Empathy", "CRM Software"},
		GrowthPotential: "Path to customer success manager and account management roles",
	},
	{
		Title:           "Sales Development Representative",
		Description:     "Generate leads and qualify prospects for sales team. Learn fundamentals of B2B sales process.",
		SalaryRange:     "$40,000 - $60,000",
		MatchScore:      81,
		RequiredSkills:  []string{"Communication", "Persistence", "CRM", "Research"},
		GrowthPotential: "Direct path to account executive and sales manager positions",
	},
	{
		Title:           "Junior Financial Analyst",
		Description:     "Support financial planning and analysis using Excel and financial software. Great entry into finance.",
		SalaryRange:     "$42,000 - $62,000",
		MatchScore:      84,
		RequiredSkills:  []string{"Excel", "Financial Modeling", "Attention to Detail", "Communication"},
		GrowthPotential: "Clear progression to senior analyst and finance manager roles",
	},
	{
		Title:           "Content Creator",
		Description:     "Create engaging content for websites, social media, and marketing materials. Perfect for creative individuals.",
		SalaryRange:     "$30,000 - $45,000",
		MatchScore:      86,
		RequiredSkills:  []string{"Writing", "Social Media", "Basic Design", "SEO"},
		GrowthPotential: "Can advance to content manager and creative director positions",
	},
}
