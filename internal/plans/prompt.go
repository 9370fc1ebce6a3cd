package plans

import (
	"fmt"
	"strings"

	"careerpath-backend/internal/careers"
	"careerpath-backend/internal/llm"
)

const (
	planSystemPrompt = "You are an educational content creator AI that designs comprehensive learning curricula. " +
		"Always respond with valid JSON format."
	skillsSystemPrompt = "You are a career advisor AI. Analyze resumes and identify missing skills. " +
		"Return ONLY a clean comma-separated list in array format like ['skill1', 'skill2', 'skill3']."
)

func buildPlanPrompt(job careers.Recommendation, resumeContext, transcriptContext string) []llm.Message {
	requiredSkills := strings.Join(job.RequiredSkills, ", ")
	if requiredSkills == "" {
		requiredSkills = "Not specified"
	}

	var userContext strings.Builder
	if resumeContext != "" {
		fmt.Fprintf(&userContext, "Resume information: %s\n", resumeContext)
	}
	if transcriptContext != "" {
		fmt.Fprintf(&userContext, "Educational background: %s\n", transcriptContext)
	}

	user := fmt.Sprintf(`Create a detailed 30-day learning plan for someone who wants to become a %s.

Job Details:
- Title: %s
- Description: %s
- Required Skills: %s

User Context:
%s
Create a 30-day plan where each day has:
1. Day number (1-30)
2. Title (specific topic for that day)
3. Type (reading, video, quiz, or game)
4. Duration (5 minutes)

The plan should:
- Build progressively from basics to advanced topics
- Mix different learning types (reading, video, quiz, game)
- Be specific to the %s role
- Consider the user's background if provided

Format as JSON with this structure:
{
  "title": "%s Learning Plan",
  "description": "A personalized 30-day learning plan...",
  "totalDays": 30,
  "days": [
    {
      "day": 1,
      "title": "Day 1: Introduction to...",
      "type": "reading",
      "duration": "5 minutes"
    }
  ]
}`,
		job.Title, job.Title, job.Description, requiredSkills, userContext.String(), job.Title, job.Title)

	return []llm.Message{
		{Role: "system", Content: planSystemPrompt},
		{Role: "user", Content: user},
	}
}

func buildMissingSkillsPrompt(resumeText, jobTitle string) []llm.Message {
	user := fmt.Sprintf("Based on this resume: %s, identify the 5-7 most important missing skills or tools "+
		"the user needs to succeed as a %s. Return the list in a comma-separated array format, "+
		"such as ['SQL', 'Power BI', 'pivot tables', 'data storytelling'].", resumeText, jobTitle)

	return []llm.Message{
		{Role: "system", Content: skillsSystemPrompt},
		{Role: "user", Content: user},
	}
}
