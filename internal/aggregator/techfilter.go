package aggregator

import "strings"

var techKeywords = []string{
	"software engineer", "software developer", "backend", "frontend", "full stack",
	"fullstack", "full-stack", "web developer", "mobile developer", "ios developer",
	"android developer", "application developer", "systems engineer", "embedded",

	"data engineer", "data scientist", "data analyst", "machine learning", "ml engineer",
	"ai engineer", "deep learning", "nlp", "computer vision", "analytics engineer",
	"business intelligence", "bi developer", "etl", "data architect",

	"devops", "sre", "site reliability", "cloud engineer", "platform engineer",
	"infrastructure", "kubernetes", "docker", "aws", "azure", "gcp", "terraform",
	"devsecops", "systems administrator", "linux", "unix",

	"security engineer", "cybersecurity", "infosec", "penetration", "appsec",

	"qa engineer", "quality assurance", "test engineer", "sdet", "automation engineer",

	"solutions architect", "technical architect", "engineering manager", "tech lead",
	"principal engineer", "staff engineer", "cto", "vp engineering",

	"blockchain", "smart contract", "solidity", "web3", "game developer",
	"graphics programmer", "firmware", "robotics", "computer engineer",
}

var techExclusions = []string{
	"nurse", "nursing", "medical", "healthcare", "physician", "therapist",
	"dental", "pharmacy", "clinical", "patient", "hospital",
	"teacher", "professor", "instructor", "tutor", "education",
	"sales representative", "account executive", "business development",
	"marketing manager", "social media", "content writer",
	"accountant", "financial analyst", "bookkeeper", "auditor",
	"lawyer", "attorney", "paralegal", "legal assistant",
	"hr manager", "recruiter", "talent acquisition",
	"warehouse", "forklift", "driver", "delivery", "logistics",
	"chef", "cook", "restaurant", "hospitality", "hotel",
	"construction", "electrician", "plumber", "hvac", "mechanic",
}

// IsTechJob reports whether a title looks like a technology role. Exclusions
// are checked first so "Medical Software Engineer" is still rejected.
func IsTechJob(title string) bool {
	if title == "" {
		return false
	}
	t := strings.ToLower(title)
	for _, excl := range techExclusions {
		if strings.Contains(t, excl) {
			return false
		}
	}
	for _, kw := range techKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}
