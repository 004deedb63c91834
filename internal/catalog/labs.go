package catalog

var labs = []Lab{
	{
		ID:            "lab-prompt",
		Title:         "Prompt Engineering - Live Practice",
		Overview:      "Learn by editing and running prompts in real time. Experiment with different roles and constraints.",
		SystemPrompt:  "You are a professional AI trainer.",
		InitialPrompt: "Explain Generative AI to a beginner.\nProvide 3 real-world examples.",
		Challenges: []string{
			`Change the audience to "working professionals"`,
			"Add output in bullet points",
			"Limit output to 150 words",
		},
	},
	{
		ID:            "lab-agent",
		Title:         "AI Agent Design",
		Overview:      "Design an agent with a specific role and set of constraints to help users solve problems.",
		SystemPrompt:  "You are a Career Guidance Agent.",
		InitialPrompt: "Recommend a free AI learning path for fresh graduates.\nConstraints:\n- Only free tools\n- No paid certifications",
		Challenges: []string{
			"Make the output a step-by-step roadmap",
			`Add a section for "Top 3 LinkedIn Skills" to add`,
			"Assume the user has zero coding background",
		},
	},
}
