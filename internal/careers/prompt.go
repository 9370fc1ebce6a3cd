package careers

import (
	"fmt"
	"strings"

	"careerpath-backend/internal/llm"
)

const recommendationSystemPrompt = "You are a career counselor AI that provides personalized job recommendations. " +
	"You must respond with ONLY valid JSON format - no markdown, no code blocks, no explanations. Just a clean JSON array."

func buildRecommendationPrompt(salary float64, activities, userSkills []string) []llm.Message {
	user := fmt.Sprintf(`Based on the following user preferences, provide 10 personalized ENTRY-LEVEL career recommendations:

Salary preference: $%.0f
Activities they enjoy: %s
Skills they have: %s

IMPORTANT: Focus ONLY on entry-level positions suitable for recent graduates, career changers, or people starting their careers. Include internships, junior roles, associate positions, and trainee programs.

For each career, provide:
1. title (entry-level job title like "Junior Data Analyst", "Marketing Associate", "Sales Representative")
2. description (2-3 sentences about the entry-level role and what beginners would do)
3. salaryRange (realistic entry-level range like "$35,000 - $55,000" or "$40,000 - $65,000")
4. matchScore (number between 70-99 based on how well it matches their preferences)
5. requiredSkills (array of 3-5 key skills needed for entry-level)
6. growthPotential (1-2 sentences about career growth from this entry-level position)

Return ONLY a valid JSON array of career objects. No markdown formatting, no explanations, just the JSON array.`,
		salary, strings.Join(activities, ", "), strings.Join(userSkills, ", "))

	return []llm.Message{
		{Role: "system", Content: recommendationSystemPrompt},
		{Role: "user", Content: user},
	}
}
