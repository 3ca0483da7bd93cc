package config

// Default returns the built-in catalog. Content here is data, not logic:
// deployments that need different questions, benchmarks, or recommendation
// copy override it with a YAML catalog via Load.
func Default() (*Catalog, error) {
	c := defaultCatalog()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func defaultCatalog() *Catalog {
	return &Catalog{
		Dimensions: []string{"people_skills", "process", "strategy"},
		Questions: []Question{
			{ID: "ps_ai_literacy", Dimension: "people_skills", Text: "How would you rate your team's overall AI literacy?"},
			{ID: "ps_tool_adoption", Dimension: "people_skills", Text: "How widely are AI tools adopted in day-to-day marketing work?"},
			{ID: "ps_training", Dimension: "people_skills", Weight: 0.8, Text: "How regularly does the team receive AI/automation training?"},
			{ID: "ps_experimentation", Dimension: "people_skills", Text: "How comfortable is the team experimenting with new AI tools?"},

			{ID: "pr_data_quality", Dimension: "process", Weight: 1.5, Text: "How clean and centralized is your customer and campaign data?"},
			{ID: "pr_automation", Dimension: "process", Text: "How much of your repeatable marketing work is automated?"},
			{ID: "pr_measurement", Dimension: "process", Text: "How consistently do you measure campaign performance?"},
			{ID: "pr_workflow_docs", Dimension: "process", Weight: 0.7, Text: "How well documented are your marketing workflows?"},

			{ID: "st_leadership", Dimension: "strategy", Weight: 1.3, Text: "How committed is leadership to AI adoption in marketing?"},
			{ID: "st_budget", Dimension: "strategy", Text: "Is there dedicated budget for AI tooling and enablement?"},
			{ID: "st_roadmap", Dimension: "strategy", Text: "Do you have a written roadmap for AI in marketing?"},
			{ID: "st_governance", Dimension: "strategy", Weight: 0.8, Text: "Do you have guidelines for responsible AI use?"},

			{ID: "cm_ai_drafting", Dimension: "people_skills", Activity: "content_marketing", Text: "How often is AI used to draft or repurpose content?"},
			{ID: "cm_briefs", Dimension: "process", Activity: "content_marketing", Text: "Are content briefs generated or enriched with AI?"},
			{ID: "seo_research", Dimension: "process", Activity: "seo", Text: "Is keyword and intent research AI-assisted?"},
			{ID: "seo_optimization", Dimension: "process", Activity: "seo", Text: "Do you use AI for on-page optimization at scale?"},
			{ID: "pa_bidding", Dimension: "process", Activity: "paid_advertising", Text: "Do your ad platforms run on automated bidding strategies?"},
			{ID: "pa_creative", Dimension: "people_skills", Activity: "paid_advertising", Text: "Is ad creative generated or tested with AI?"},
			{ID: "em_personalization", Dimension: "process", Activity: "email_marketing", Text: "How personalized are your email campaigns?"},
			{ID: "em_send_time", Dimension: "process", Activity: "email_marketing", Weight: 0.8, Text: "Do you use predictive send-time or segment optimization?"},
			{ID: "sm_scheduling", Dimension: "process", Activity: "social_media", Text: "Is social publishing automated and AI-assisted?"},
			{ID: "an_dashboards", Dimension: "process", Activity: "analytics_reporting", Text: "Are reporting dashboards automated end to end?"},
			{ID: "an_insights", Dimension: "strategy", Activity: "analytics_reporting", Text: "Do you use AI to surface insights from marketing data?"},
		},
		Industries: map[string]IndustryProfile{
			"b2b_saas": {
				Key:                  "b2b_saas",
				Label:                "B2B SaaS",
				DimensionWeights:     map[string]float64{"people_skills": 0.3, "process": 0.4, "strategy": 0.3},
				BenchmarkAverage:     75,
				BenchmarkTopQuartile: 88,
			},
			"ecommerce": {
				Key:                  "ecommerce",
				Label:                "E-commerce / Retail",
				DimensionWeights:     map[string]float64{"people_skills": 0.25, "process": 0.45, "strategy": 0.3},
				BenchmarkAverage:     70,
				BenchmarkTopQuartile: 85,
			},
			"healthcare": {
				Key:                  "healthcare",
				Label:                "Healthcare",
				DimensionWeights:     map[string]float64{"people_skills": 0.35, "process": 0.35, "strategy": 0.3},
				BenchmarkAverage:     55,
				BenchmarkTopQuartile: 72,
			},
			"financial_services": {
				Key:                  "financial_services",
				Label:                "Financial Services",
				DimensionWeights:     map[string]float64{"people_skills": 0.3, "process": 0.35, "strategy": 0.35},
				BenchmarkAverage:     65,
				BenchmarkTopQuartile: 82,
			},
			"manufacturing": {
				Key:                  "manufacturing",
				Label:                "Manufacturing / Industrial",
				DimensionWeights:     map[string]float64{"people_skills": 0.3, "process": 0.4, "strategy": 0.3},
				BenchmarkAverage:     50,
				BenchmarkTopQuartile: 68,
			},
			"agency": {
				Key:                  "agency",
				Label:                "Marketing Agency",
				DimensionWeights:     map[string]float64{"people_skills": 0.4, "process": 0.3, "strategy": 0.3},
				BenchmarkAverage:     72,
				BenchmarkTopQuartile: 86,
			},
		},
		Activities: map[string]ActivityProfile{
			"content_marketing":   {Key: "content_marketing", Label: "Content Marketing", ImpactWeight: 1.3, ROIMultiplier: 2.2},
			"seo":                 {Key: "seo", Label: "SEO", ImpactWeight: 1.1, ROIMultiplier: 1.8},
			"paid_advertising":    {Key: "paid_advertising", Label: "Paid Advertising", ImpactWeight: 1.2, ROIMultiplier: 1.6},
			"email_marketing":     {Key: "email_marketing", Label: "Email Marketing", ImpactWeight: 1.0, ROIMultiplier: 1.9},
			"social_media":        {Key: "social_media", Label: "Social Media", ImpactWeight: 0.9, ROIMultiplier: 1.5},
			"analytics_reporting": {Key: "analytics_reporting", Label: "Analytics & Reporting", ImpactWeight: 1.0, ROIMultiplier: 1.7},
		},
		CompanySizes: map[string]CompanySizeProfile{
			"solo":       {Key: "solo", Label: "Solo / freelance", TeamSize: 1, AvgCostPerPersonUSD: 75000},
			"small":      {Key: "small", Label: "2-10 people", TeamSize: 5, AvgCostPerPersonUSD: 65000},
			"medium":     {Key: "medium", Label: "11-50 people", TeamSize: 25, AvgCostPerPersonUSD: 70000},
			"large":      {Key: "large", Label: "51-200 people", TeamSize: 100, AvgCostPerPersonUSD: 78000},
			"enterprise": {Key: "enterprise", Label: "200+ people", TeamSize: 350, AvgCostPerPersonUSD: 85000},
		},
		Recommendations: defaultRecommendations(),
	}
}

func defaultRecommendations() []RecommendationTemplate {
	return []RecommendationTemplate{
		// Dimension templates. Bands follow the shared policy cut points:
		// low < 40, mid 40-69, high >= 70.
		{ID: "ps_low_training", Dimension: "people_skills", Band: ScoreBand{Min: 0, Max: 39.99}, Priority: "HIGH",
			Title: "Run a structured AI upskilling program",
			Body:  "Team AI literacy is the biggest constraint on everything else. Start with a weekly hands-on session using the tools you already pay for.",
			InvestmentHint: "Low", TimelineHint: "4-8 weeks"},
		{ID: "ps_low_champion", Dimension: "people_skills", Band: ScoreBand{Min: 0, Max: 39.99}, Priority: "MEDIUM",
			Title: "Appoint an internal AI champion",
			Body:  "Nominate one practitioner to evaluate tools, share wins, and answer questions so adoption doesn't depend on self-starters."},
		{ID: "ps_mid_playbooks", Dimension: "people_skills", Band: ScoreBand{Min: 40, Max: 69.99}, Priority: "MEDIUM",
			Title: "Codify prompting playbooks per channel",
			Body:  "The team uses AI but inconsistently. Capture what works as shared playbooks and templates to level everyone up.",
			TimelineHint: "2-4 weeks"},
		{ID: "ps_high_advanced", Dimension: "people_skills", Band: ScoreBand{Min: 70, Max: 100}, Priority: "LOW",
			Title: "Pilot agentic workflows",
			Body:  "With strong AI fluency in place, pilot multi-step automated workflows on one well-measured channel."},

		{ID: "pr_low_data", Dimension: "process", Band: ScoreBand{Min: 0, Max: 39.99}, Priority: "HIGH",
			Title: "Consolidate customer and campaign data first",
			Body:  "AI output quality tracks data quality. Centralize campaign and customer data into one system of record before adding more tooling.",
			InvestmentHint: "Medium", TimelineHint: "1-3 months"},
		{ID: "pr_low_measurement", Dimension: "process", Band: ScoreBand{Min: 0, Max: 39.99}, Priority: "HIGH",
			Title: "Stand up baseline campaign measurement",
			Body:  "Without consistent measurement you cannot tell whether AI changes anything. Define the 3-5 metrics every campaign must report."},
		{ID: "pr_mid_automation", Dimension: "process", Band: ScoreBand{Min: 40, Max: 69.99}, Priority: "MEDIUM",
			Title: "Automate the top three repeatable workflows",
			Body:  "Map your most frequent manual workflows and automate the three with the highest volume. Revisit quarterly.",
			TimelineHint: "4-6 weeks"},
		{ID: "pr_high_optimize", Dimension: "process", Band: ScoreBand{Min: 70, Max: 100}, Priority: "LOW",
			Title: "Add continuous experimentation to automated flows",
			Body:  "Layer automated A/B testing onto existing automations so optimization compounds without manual effort."},

		{ID: "st_low_roadmap", Dimension: "strategy", Band: ScoreBand{Min: 0, Max: 39.99}, Priority: "HIGH",
			Title: "Write a one-page AI roadmap with leadership",
			Body:  "Agree on where AI should and should not be used, who owns it, and what success looks like in two quarters.",
			InvestmentHint: "Low", TimelineHint: "1-2 weeks"},
		{ID: "st_mid_budget", Dimension: "strategy", Band: ScoreBand{Min: 40, Max: 69.99}, Priority: "MEDIUM",
			Title: "Ring-fence an AI tooling budget",
			Body:  "Ad-hoc tool purchases stall adoption. A small dedicated budget with a fast approval path keeps momentum."},
		{ID: "st_mid_governance", Dimension: "strategy", Band: ScoreBand{Min: 40, Max: 69.99}, Priority: "LOW",
			Title: "Publish responsible-use guidelines",
			Body:  "Short written guidance on data handling, disclosure, and review removes the ambiguity that makes teams hesitant."},
		{ID: "st_high_scale", Dimension: "strategy", Band: ScoreBand{Min: 70, Max: 100}, Priority: "LOW",
			Title: "Extend the AI roadmap beyond marketing",
			Body:  "Marketing readiness is ahead of most peers; share the operating model with adjacent functions."},

		// Activity templates. Activity bands start "needs attention" earlier:
		// low < 50, mid 50-69, high >= 70.
		{ID: "cm_low_pipeline", Activity: "content_marketing", Band: ScoreBand{Min: 0, Max: 49.99}, Priority: "HIGH",
			Title: "Rebuild the content pipeline around AI drafting",
			Body:  "Use AI for first drafts, outlines, and repurposing; keep editors on voice and accuracy. Expect 2-3x throughput on existing headcount.",
			InvestmentHint: "Low", TimelineHint: "2-4 weeks"},
		{ID: "cm_mid_repurpose", Activity: "content_marketing", Band: ScoreBand{Min: 50, Max: 69.99}, Priority: "MEDIUM",
			Title: "Systematize content repurposing",
			Body:  "Turn every long-form piece into channel-specific derivatives with a standing AI-assisted repurposing checklist."},
		{ID: "seo_low_research", Activity: "seo", Band: ScoreBand{Min: 0, Max: 49.99}, Priority: "HIGH",
			Title: "Adopt AI-assisted keyword and intent research",
			Body:  "Cluster keywords by intent with AI tooling and map them to the funnel before writing another page."},
		{ID: "seo_mid_onpage", Activity: "seo", Band: ScoreBand{Min: 50, Max: 69.99}, Priority: "MEDIUM",
			Title: "Scale on-page optimization with AI review",
			Body:  "Run existing top pages through AI-assisted optimization passes; prioritize pages ranking 5-15."},
		{ID: "pa_low_bidding", Activity: "paid_advertising", Band: ScoreBand{Min: 0, Max: 49.99}, Priority: "HIGH",
			Title: "Move spend onto automated bidding",
			Body:  "Manual bidding is outperformed at any meaningful spend level. Migrate campaigns to platform automation with guardrails."},
		{ID: "pa_mid_creative", Activity: "paid_advertising", Band: ScoreBand{Min: 50, Max: 69.99}, Priority: "MEDIUM",
			Title: "Generate and test creative variants with AI",
			Body:  "Feed winning angles into AI variant generation and let the platform rotate; refresh monthly."},
		{ID: "em_low_segments", Activity: "email_marketing", Band: ScoreBand{Min: 0, Max: 49.99}, Priority: "HIGH",
			Title: "Introduce behavioral segmentation",
			Body:  "Replace batch-and-blast with 3-5 behavioral segments and AI-drafted variants per segment."},
		{ID: "em_mid_lifecycle", Activity: "email_marketing", Band: ScoreBand{Min: 50, Max: 69.99}, Priority: "MEDIUM",
			Title: "Automate lifecycle triggers",
			Body:  "Add triggered lifecycle flows (welcome, win-back, post-purchase) before expanding one-off sends."},
		{ID: "sm_low_cadence", Activity: "social_media", Band: ScoreBand{Min: 0, Max: 49.99}, Priority: "MEDIUM",
			Title: "Automate the publishing cadence",
			Body:  "Schedule from a single AI-assisted queue so channel presence stops depending on daily manual effort."},
		{ID: "an_low_dashboards", Activity: "analytics_reporting", Band: ScoreBand{Min: 0, Max: 49.99}, Priority: "HIGH",
			Title: "Automate reporting before adding analysis",
			Body:  "Manual report assembly consumes the hours AI insight tools are supposed to free up. Automate data pulls end to end first."},
		{ID: "an_mid_insights", Activity: "analytics_reporting", Band: ScoreBand{Min: 50, Max: 69.99}, Priority: "MEDIUM",
			Title: "Layer AI insight summaries onto dashboards",
			Body:  "Generate weekly natural-language summaries of dashboard movement to shorten the metric-to-decision loop."},

		// Industry templates keyed to the overall score bands
		// (low < 40, mid 40-64, high 65-84, top >= 85).
		{ID: "saas_low_plg", Industry: "b2b_saas", Band: ScoreBand{Min: 0, Max: 39.99}, Priority: "MEDIUM",
			Title: "Benchmark against SaaS peers quarterly",
			Body:  "SaaS buyers expect AI-informed touchpoints; your readiness trails the category average, so close the gap on one channel at a time."},
		{ID: "saas_top_moat", Industry: "b2b_saas", Band: ScoreBand{Min: 85, Max: 100}, Priority: "LOW",
			Title: "Publish your AI operating model",
			Body:  "Top-quartile readiness is a differentiator in SaaS; make it part of the brand."},
		{ID: "health_mid_compliance", Industry: "healthcare", Band: ScoreBand{Min: 40, Max: 64.99}, Priority: "MEDIUM",
			Title: "Pair AI adoption with compliance review",
			Body:  "Healthcare marketing has regulatory exposure most sectors lack; involve compliance in tool selection now rather than retrofitting."},
		{ID: "fin_mid_governance", Industry: "financial_services", Band: ScoreBand{Min: 40, Max: 64.99}, Priority: "MEDIUM",
			Title: "Formalize model and content governance",
			Body:  "Financial services scrutiny makes documented AI review non-negotiable; codify approval flows before scaling output."},
		{ID: "ecom_high_personalize", Industry: "ecommerce", Band: ScoreBand{Min: 65, Max: 84.99}, Priority: "LOW",
			Title: "Push toward 1:1 merchandising",
			Body:  "Your readiness supports product-level personalization; start with on-site recommendations and email."},
	}
}
