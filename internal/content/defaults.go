package content

import (
	"time"

	"github.com/insight-ec/opportunity-board/internal/models"
)

// defaultSiteContent is the built-in document every process starts from.
// The page bodies are markdown; the client renders them.
func defaultSiteContent() models.SiteContent {
	return models.SiteContent{
		AboutText: "Created by a TechGirls alum to help students discover life-changing opportunities.",
		QuickLinks: []models.QuickLink{
			{ID: "1", Label: "Home", URL: "/"},
			{ID: "2", Label: "View Ecuador Opportunities", URL: "/?search=Ecuador"},
			{ID: "3", Label: "Contact", URL: "mailto:contact@insight.com"},
		},
		ResourceLinks: []models.QuickLink{
			{ID: "1", Label: "How to Apply", URL: "/how-to-apply"},
			{ID: "2", Label: "Scholarship Tips", URL: "/tips"},
		},
		HowToApplyTitle:   "How to Apply for Opportunities",
		HowToApplyContent: defaultHowToApply,
		TipsTitle:         "Scholarship Tips & Success Strategies",
		TipsContent:       defaultTips,
		LastUpdated:       time.Now().UTC(),
	}
}

const defaultHowToApply = `## Step-by-Step Application Guide

Follow these steps to successfully apply for opportunities on INSIGHT.

### Step 1: Find the Right Opportunity

- Use the filters on the homepage to narrow down options
- Check if you meet the eligibility requirements (age, location, language)
- Look at the deadline and funding type

### Step 2: Prepare Your Materials

- **Resume/CV** - Keep it updated with your latest experiences
- **Personal statement** - Write about your goals and motivations
- **Recommendation letters** - Ask teachers or mentors in advance
- **Transcripts** - Request official copies if needed

### Step 3: Start Your Application Early

- Don't wait until the deadline
- Give yourself time to review and revise
- Ask someone to proofread your application

### Step 4: Submit and Follow Up

- Double-check all required documents are attached
- Save a copy of your submitted application
- Note any follow-up deadlines or interviews

### Common Mistakes to Avoid

- Missing deadlines
- Not following instructions carefully
- Submitting incomplete applications
- Generic essays that don't answer the prompt

### Need Help?

Contact us or reach out to a mentor for guidance on your applications.`

const defaultTips = `## Winning Scholarship Strategies

Get tips to make your scholarship applications stand out!

### Before You Apply

1. **Research thoroughly** - Understand what the organization is looking for
2. **Check eligibility** - Make sure you meet all requirements before spending time on an application
3. **Note deadlines** - Create a calendar with all important dates

### Writing Strong Applications

- **Be authentic** - Share your genuine story and motivations
- **Be specific** - Use concrete examples from your experiences
- **Proofread** - Always have someone else review your application
- **Follow instructions** - Read all guidelines carefully

### Interview Tips

- Practice common questions beforehand
- Prepare thoughtful questions to ask them
- Dress appropriately and be punctual
- Follow up with a thank you note

### Dealing with Rejection

Rejection is normal! Many successful students applied to multiple opportunities before being accepted. Keep trying and learning from each experience.

### Financial Aid Tips

- Apply for multiple scholarships to increase your chances
- Look for local and community-based opportunities
- Check if the opportunity covers travel and living expenses

### Need More Help?

Reach out to mentors, teachers, or counselors who can guide you through the process.`
