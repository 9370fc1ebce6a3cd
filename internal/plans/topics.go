package plans

import "fmt"

// defaultTopicRole is used when the selected role has no topic table.
const defaultTopicRole = "Marketing Coordinator"

// roleTopics maps a role title to its 30 daily topics.
var roleTopics = map[string][]string{
	"Frontend Developer": {
		"HTML Fundamentals", "CSS Basics", "JavaScript Introduction", "DOM Manipulation", "ES6 Features",
		"React Basics", "Components & Props", "State Management", "Event Handling", "Hooks Introduction",
		"useEffect Hook", "Custom Hooks", "Context API", "Routing", "Forms",
		"API Integration", "Error Handling", "Testing Basics", "Performance", "Accessibility",
		"Responsive Design", "CSS Grid", "Flexbox", "Animations", "Build Tools",
		"Git & GitHub", "Deployment", "Code Review", "Best Practices", "Final Project",
	},
	"Data Analyst": {
		"Excel Basics", "Data Types", "Formulas & Functions", "Pivot Tables", "Charts & Graphs",
		"Python Introduction", "Pandas Library", "Data Cleaning", "Data Visualization", "Statistics Basics",
		"Descriptive Statistics", "Inferential Statistics", "Hypothesis Testing", "Correlation", "Regression",
		"SQL Basics", "Database Queries", "Joins", "Aggregations", "Data Modeling",
		"Dashboard Creation", "Storytelling with Data", "Business Intelligence", "KPIs", "Reporting",
		"Advanced Analytics", "Forecasting", "A/B Testing", "Case Studies", "Final Project",
	},
	"Marketing Coordinator": {
		"Marketing Fundamentals", "Target Audience Research", "Brand Positioning", "Marketing Mix (4Ps)", "Consumer Behavior",
		"Digital Marketing Basics", "Social Media Marketing", "Content Marketing", "Email Marketing", "SEO Fundamentals",
		"Google Analytics", "Facebook Ads Manager", "Instagram Marketing", "LinkedIn Marketing", "Twitter Marketing",
		"Content Creation", "Copywriting Basics", "Visual Design Principles", "Photography for Marketing", "Video Marketing",
		"Campaign Planning", "Budget Management", "ROI Measurement", "A/B Testing", "Marketing Automation",
		"Customer Journey Mapping", "Lead Generation", "CRM Basics", "Event Marketing", "Final Campaign Project",
	},
	"Junior Data Analyst": {
		"Data Literacy", "Excel Fundamentals", "Data Types & Formats", "Basic Statistics", "Data Collection",
		"Data Cleaning Basics", "Sorting & Filtering", "Pivot Tables", "VLOOKUP & HLOOKUP", "Charts & Graphs",
		"Statistical Concepts", "Mean, Median, Mode", "Standard Deviation", "Data Distributions", "Correlation Analysis",
		"Introduction to SQL", "Basic Queries", "WHERE Clauses", "GROUP BY", "JOINs",
		"Data Visualization", "Dashboard Design", "Storytelling with Data", "Presentation Skills", "Business Context",
		"Quality Assurance", "Data Ethics", "Documentation", "Final Analysis Project", "Portfolio Building",
	},
	"Software Developer": {
		"Programming Fundamentals", "Problem Solving", "Algorithms", "Data Structures", "Version Control (Git)",
		"Object-Oriented Programming", "Functions & Methods", "Error Handling", "Testing Basics", "Code Documentation",
		"Web Development Basics", "APIs & HTTP", "Databases", "Security Fundamentals", "Code Review Process",
		"Agile Methodology", "Project Planning", "User Stories", "Sprint Planning", "Team Collaboration",
		"Performance Optimization", "Debugging Techniques", "Best Practices", "Deployment", "Final Project",
	},
	"Sales Representative": {
		"Sales Fundamentals", "Customer Psychology", "Active Listening", "Rapport Building", "Needs Assessment",
		"Product Knowledge", "Value Proposition", "Features vs Benefits", "Competitive Analysis", "Objection Handling",
		"Sales Process", "Lead Qualification", "Discovery Questions", "Presentation Skills", "Closing Techniques",
		"CRM Systems", "Pipeline Management", "Follow-up Strategies", "Customer Retention", "Upselling & Cross-selling",
		"Time Management", "Territory Planning", "Networking", "Social Selling", "Sales Analytics",
		"Negotiation Skills", "Contract Basics", "Customer Success", "Continuous Learning", "Final Sales Project",
	},
	"Project Manager": {
		"Project Management Basics", "Project Lifecycle", "Stakeholder Management", "Scope Definition", "Requirements Gathering",
		"Work Breakdown Structure", "Scheduling", "Resource Planning", "Budget Management", "Risk Assessment",
		"Team Leadership", "Communication Skills", "Meeting Management", "Conflict Resolution", "Change Management",
		"Agile Methodology", "Scrum Framework", "Kanban Boards", "Sprint Planning", "Retrospectives",
		"Project Tools", "Gantt Charts", "Progress Tracking", "Quality Assurance", "Documentation",
		"Performance Metrics", "Lessons Learned", "Project Closure", "Stakeholder Reporting", "Final Project Plan",
	},
	"Human Resources Coordinator": {
		"HR Fundamentals", "Employment Law Basics", "Recruitment Process", "Job Descriptions", "Interview Techniques",
		"Onboarding Process", "Employee Relations", "Performance Management", "Compensation & Benefits", "HRIS Systems",
		"Training & Development", "Employee Engagement", "Workplace Diversity", "Conflict Resolution", "Documentation",
		"Compliance Requirements", "Safety Regulations", "Employee Handbook", "Policy Development", "Grievance Procedures",
		"Data Analysis", "HR Metrics", "Retention Strategies", "Exit Interviews", "Culture Building",
		"Communication Skills", "Confidentiality", "Ethical Practices", "Change Management", "HR Strategy",
	},
	"Customer Service Representative": {
		"Customer Service Basics", "Communication Skills", "Active Listening", "Empathy & Patience", "Problem Solving",
		"Product Knowledge", "Company Policies", "Service Standards", "First Call Resolution", "De-escalation Techniques",
		"Phone Etiquette", "Email Communication", "Chat Support", "CRM Systems", "Ticket Management",
		"Complaint Handling", "Refund Processes", "Escalation Procedures", "Customer Retention", "Upselling Basics",
		"Time Management", "Multitasking", "Stress Management", "Team Collaboration", "Quality Assurance",
		"Customer Feedback", "Continuous Improvement", "Service Recovery", "Relationship Building", "Final Case Study",
	},
}

// roleFallbackSkills supplies a static missing-skills list per role when the
// generative call fails.
var roleFallbackSkills = map[string][]string{
	"Data Analyst":              {"SQL", "Power BI", "pivot tables", "data storytelling", "statistics"},
	"Junior Data Analyst":       {"SQL", "Excel formulas", "data visualization", "Python", "statistics"},
	"Frontend Developer":        {"React", "JavaScript", "CSS", "HTML", "Git"},
	"Junior Frontend Developer": {"HTML", "CSS", "JavaScript", "responsive design", "Git"},
}

var genericFallbackSkills = []string{"communication", "problem solving", "teamwork", "adaptability"}

// TopicForDay returns the daily topic for a role, degrading from the role's
// table to the default role's table to a generic label.
func TopicForDay(role string, day int) string {
	topics, ok := roleTopics[role]
	if !ok {
		topics = roleTopics[defaultTopicRole]
	}
	if day >= 1 && day <= len(topics) {
		return topics[day-1]
	}
	return fmt.Sprintf("%s Topic %d", role, day)
}

// FallbackSkillsForRole returns the static missing-skills list for a role.
func FallbackSkillsForRole(role string) []string {
	if skills, ok := roleFallbackSkills[role]; ok {
		return append([]string(nil), skills...)
	}
	return append([]string(nil), genericFallbackSkills...)
}
