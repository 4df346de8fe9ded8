package models

import (
	"sort"
	"time"
)

type OpportunityType string

const (
	OpportunityHackathon  OpportunityType = "hackathon"
	OpportunityInternship OpportunityType = "internship"
	OpportunityJob        OpportunityType = "job"
)

// Opportunity is a single feed posting. Records are immutable once listed;
// MatchScore is attached per viewing user, never stored on the entry.
type Opportunity struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Company     string          `json:"company"`
	Type        OpportunityType `json:"type"`
	Location    string          `json:"location"`
	Deadline    time.Time       `json:"deadline"`
	Description string          `json:"description"`
	Skills      []string        `json:"skills"`
	URL         string          `json:"url"`
	IsLatest    bool            `json:"isLatest,omitempty"`
	MatchScore  *int            `json:"matchScore,omitempty"`
}

func mustTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}

// Catalog is the static in-memory opportunity feed.
var Catalog = []Opportunity{
	{
		ID:       "1",
		Title:    "AI for Good Hackathon 2026",
		Company:  "Devpost",
		Type:     OpportunityHackathon,
		Location: "remote",
		Deadline: mustTime("2026-03-15T23:59:00Z"),
		Description: "Build AI solutions addressing social challenges like healthcare access, climate change, " +
			"and education equity. Open to all skill levels with mentorship from industry leaders. Teams of up " +
			"to 4. Prizes worth $50,000 including cloud credits and incubator access.",
		Skills:   []string{"Python", "Machine Learning", "TensorFlow", "NLP"},
		URL:      "https://devpost.com",
		IsLatest: true,
	},
	{
		ID:       "2",
		Title:    "Software Engineering Intern",
		Company:  "Stripe",
		Type:     OpportunityInternship,
		Location: "hybrid",
		Deadline: mustTime("2026-03-01T23:59:00Z"),
		Description: "Join Stripe's payments infrastructure team for a 12-week summer internship. You'll work on " +
			"distributed systems serving millions of API requests per day, contribute to production codebases in " +
			"Go and TypeScript, and collaborate with senior engineers on latency-critical services. Includes " +
			"housing stipend and relocation support.",
		Skills:   []string{"TypeScript", "Go", "Distributed Systems", "APIs"},
		URL:      "https://stripe.com/jobs",
		IsLatest: true,
	},
	{
		ID:       "3",
		Title:    "MLH Global Hack Week",
		Company:  "MLH",
		Type:     OpportunityHackathon,
		Location: "remote",
		Deadline: mustTime("2026-02-28T23:59:00Z"),
		Description: "Week-long hacking event featuring daily coding challenges, live workshops on emerging tech, " +
			"and mini-hackathons with themed tracks. Earn points on a global leaderboard and win swag. Great for " +
			"beginners looking to build portfolio projects.",
		Skills:   []string{"Any Language", "Web Dev", "Mobile", "Data Science"},
		URL:      "https://mlh.io",
		IsLatest: true,
	},
	{
		ID:       "4",
		Title:    "Full-Stack Developer",
		Company:  "Vercel",
		Type:     OpportunityJob,
		Location: "remote",
		Deadline: mustTime("2026-04-01T23:59:00Z"),
		Description: "Build the future of web deployment as a full-stack developer at Vercel. You'll work on the " +
			"Next.js framework, Edge Functions, and serverless infrastructure used by millions of developers. " +
			"Requires strong experience with React, TypeScript, and Node.js. Competitive salary ($150K-$220K) " +
			"with equity and full benefits.",
		Skills: []string{"React", "Next.js", "TypeScript", "Node.js"},
		URL:    "https://vercel.com/careers",
	},
	{
		ID:       "5",
		Title:    "Data Science Intern",
		Company:  "Spotify",
		Type:     OpportunityInternship,
		Location: "onsite",
		Deadline: mustTime("2026-03-20T23:59:00Z"),
		Description: "Work on recommendation algorithms and audio ML models powering Spotify's 600M+ users. " +
			"You'll analyze large-scale listening data, build A/B testing frameworks, and present findings to " +
			"product teams. Located at Spotify's Stockholm or New York office. Requires coursework in statistics " +
			"and ML.",
		Skills: []string{"Python", "SQL", "Machine Learning", "Statistics"},
		URL:    "https://lifeatspotify.com",
	},
	{
		ID:       "6",
		Title:    "Unstop Innovation Challenge",
		Company:  "Unstop",
		Type:     OpportunityHackathon,
		Location: "hybrid",
		Deadline: mustTime("2026-03-10T23:59:00Z"),
		Description: "India's largest innovation challenge sponsored by top enterprises. Solve real-world " +
			"industry problems in fintech, supply chain, or sustainability. Shortlisted teams present to CXOs. " +
			"Winners receive cash prizes up to ₹10 lakh plus pre-placement interview opportunities.",
		Skills:   []string{"Problem Solving", "Full Stack", "Cloud", "AI/ML"},
		URL:      "https://unstop.com",
		IsLatest: true,
	},
}

// FilterCatalog returns catalog entries matching the given type ("" for all),
// optionally only the latest postings, sorted by deadline ascending.
func FilterCatalog(category string, latestOnly bool) []Opportunity {
	result := make([]Opportunity, 0, len(Catalog))
	for _, op := range Catalog {
		if category != "" && string(op.Type) != category {
			continue
		}
		if latestOnly && !op.IsLatest {
			continue
		}
		result = append(result, op)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Deadline.Before(result[j].Deadline)
	})
	return result
}

// CatalogByID looks up a single posting.
func CatalogByID(id string) (*Opportunity, bool) {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i], true
		}
	}
	return nil, false
}
