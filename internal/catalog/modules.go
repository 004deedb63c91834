package catalog

var modules = []Module{
	{
		ID:          "ai-basics",
		Title:       "Module 1: AI Basics",
		Order:       1,
		Description: "Understanding the fundamentals of Generative AI and LLMs.",
		Skills:      []string{"GenAI Fundamentals", "LLM Architecture"},
		Credits:     2,
		Content: `## What is Generative AI?
Generative AI refers to a category of artificial intelligence that can create new content, such as text, images, audio, and video. Unlike traditional AI that analyzes existing data, GenAI uses deep learning models to generate original outputs based on training data patterns.

### Key Concepts:
- **Large Language Models (LLMs):** AI trained on massive text datasets.
- **Neural Networks:** The underlying architecture mimicking human brain neurons.
- **Training vs Inference:** Learning from data vs. making predictions.
`,
	},
	{
		ID:          "prompt-engineering",
		Title:       "Module 2: Prompt Engineering",
		Order:       2,
		Description: "Mastering the art of instruction design for AI models.",
		Skills:      []string{"Prompt Design", "Context Management"},
		Credits:     2,
		Content: `## The Core of Prompting
Prompt Engineering is the practice of designing instructions that guide AI models to produce accurate, useful outputs.

### Components of a Perfect Prompt:
1. **Role:** Who is the AI? (e.g., "You are an AI trainer")
2. **Task:** What should it do? (e.g., "Explain Quantum Physics")
3. **Context:** Background info.
4. **Constraints:** Length, tone, format.
`,
	},
	{
		ID:          "ai-agents",
		Title:       "Module 3: AI Agents",
		Order:       3,
		Description: "Building autonomous agents that can use tools.",
		Skills:      []string{"Agentic Logic", "Tool Integration"},
		Credits:     2,
		Content: `## Autonomous Agents
An AI Agent is more than just a chatbot. It is a system that can perceive its environment, reason, and take actions to achieve goals.

### Capabilities:
- **Tool Use:** Searching the web, calculating math, or running code.
- **Memory:** Recalling past interactions to inform current decisions.
- **Planning:** Breaking complex tasks into smaller, executable steps.
`,
	},
	{
		ID:          "data-ai",
		Title:       "Module 4: Data & AI",
		Order:       4,
		Description: "Analyzing datasets and generating insights with AI.",
		Skills:      []string{"Data Literacy", "Insight Extraction"},
		Credits:     2,
		Content: `## AI-Driven Data Analysis
Modern AI can process CSVs, JSONs, and unstructured text to find correlations humans might miss.

### Workflow:
- Clean messy data using AI instructions.
- Visualize trends via Python code generation.
- Summarize massive spreadsheets into executive bullet points.
`,
	},
	{
		ID:          "use-cases",
		Title:       "Module 5: Industry Use-Cases",
		Order:       5,
		Description: "Applying AI to solve real-world business problems.",
		Skills:      []string{"Enterprise Strategy", "Ethics & Compliance"},
		Credits:     2,
		Content: `## Enterprise AI
How industries are transforming:
- **Healthcare:** Diagnostic assistance and record summarization.
- **Finance:** Fraud detection and market sentiment analysis.
- **Legal:** Contract review and precedent research.
`,
	},
}
