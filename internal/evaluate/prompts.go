package evaluate

import "strings"

// KeywordLabels is the fixed guideline order requested from the model for the
// keyword-optimization evaluation. The parser does not enforce that every
// label comes back; ordering of the output follows the model's reply.
var KeywordLabels = []string{
	"Keyword and Search Intent Alignment",
	"Primary Keyword in Page Title",
	"Page Title Engagement",
	"Page Title Modifiers",
	"Page Title Character Length",
	"Page Title HTML Structure",
	"Primary Keyword in Meta Description",
	"Primary Keyword in URL",
	"Primary Keyword in First Sentence",
	"Keyword Density",
	"Top 5 Keywords Distribution",
	"Variations and LSI Keywords",
	"Readability",
	"User Experience Factors",
}

var keywordGuidelines = []string{
	"Evaluate the content's alignment with the target keyword and search intent, ensuring it fits the content and satisfies user expectations.",
	"Assess the integration of the primary keyword in the page title and how well it is optimized for search intent.",
	"Analyze the effectiveness of the page title in engaging users and its likelihood of attracting clicks in search results.",
	"Determine if the page title could benefit from modifiers like \"Best,\" \"Top,\" \"Guide,\" or the current year.",
	"Confirm whether the page title utilizes the maximum character length without exceeding it while remaining clear and informative.",
	"Verify that the page title is wrapped in an H1 tag and follows correct HTML structure.",
	"Evaluate the inclusion and usage of the primary keyword in the meta description and its effectiveness in compelling users.",
	"Determine if the primary keyword is present in the URL, and assess whether the URL structure is lean and optimized for SEO.",
	"Analyze the placement of the primary keyword in the content, especially in the first sentence.",
	"Assess the keyword density, ensuring it is balanced and consistent with competitor content.",
	"Ensure that the top 5 keywords are distributed across various article sections.",
	"Evaluate the use of variations of the primary keyword and synonyms (LSI keywords) throughout the content.",
	"Assess the readability of the content, ensuring it is structured for easy reading and digestion by users.",
	"Analyze user experience factors, such as mobile-friendliness and load speed, that could impact SEO performance.",
}

// ContentLabels is the fixed guideline order for the content-quality evaluation.
var ContentLabels = []string{
	"Spelling and Grammar",
	"Scannability",
	"Readability",
	"Engagement",
	"Paragraph Structure",
	"Heading Structure",
	"Heading Clarity",
	"Keyword Usage",
	"Use of Lists",
	"Originality and Relevance",
}

var contentGuidelines = []string{
	"Examine the content for spacing, spelling and grammatical errors. Clearly state whether any issues were identified, including awkward phrasing, extra spaces between words or periods, or other spacing errors.",
	"Assess the content's readability and formatting. Confirm if headings, bullet points, or other elements make the content easy to scan and consume.",
	"Ensure the content is written at an 8th-grade readability level. Highlight any sentences or sections that are overly complex.",
	"Evaluate whether the content effectively captures and maintains the reader's attention throughout. Indicate any sections that might lack engagement.",
	"Verify that paragraphs are short and structured to avoid dense blocks of text. Mention if any sections deviate from this guideline.",
	"Analyze the logical flow of the headings. Confirm whether they guide the reader effectively through the content.",
	"Check if the headings are descriptive and accurately reflect the topic of each section.",
	"Evaluate the use of keyword variations, LSI keywords, or synonyms in the headings and throughout the content. Note the relevance and frequency of their usage.",
	"Verify the use of bullet points and numbered lists where applicable. Confirm whether they enhance clarity and structure.",
	"Validate the originality and relevance of the content. State whether it aligns with current trends and provides up-to-date information.",
}

// LinkLabels is the fixed guideline order for the link-quality evaluation.
var LinkLabels = []string{
	"Internal Links",
	"Descriptive Anchor Text",
	"Internal Link Optimization",
	"Breadcrumbs",
	"Usefulness of Internal Links",
	"Preferred URLs for Internal Links",
	"External Links",
	"Affiliate and Sponsored Links",
	"External Links Opening in New Window",
	"Broken Links",
}

func keywordPrompt(in Input) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following content based on SEO keyword optimization guidelines. ")
	sb.WriteString("Provide a detailed evaluation of how well the content adheres to each guideline, ")
	sb.WriteString("followed by one actionable suggestion where improvement is possible.\n\n")
	sb.WriteString("Format each guideline on its own line exactly as:\n\n")
	for _, label := range KeywordLabels {
		sb.WriteString(label)
		sb.WriteString(": [Your analysis here] Suggestions: [Your suggestion here, or leave blank]\n\n")
	}
	sb.WriteString("Content:\n")
	sb.WriteString(in.Content)
	sb.WriteString("\n\nPage Title:\n")
	sb.WriteString(in.Title)
	sb.WriteString("\n\nMeta Description:\n")
	sb.WriteString(in.MetaDescription)
	sb.WriteString("\n\nURL:\n")
	sb.WriteString(in.URL)
	if len(in.Keywords) > 0 {
		sb.WriteString("\n\nExtracted Keywords:\n")
		sb.WriteString(strings.Join(in.Keywords, ", "))
	}
	sb.WriteString("\n\nSEO Keyword Optimization Guidelines:\n")
	for _, g := range keywordGuidelines {
		sb.WriteString("    ")
		sb.WriteString(g)
		sb.WriteString("\n")
	}
	sb.WriteString("\nThe evaluation should deliver a professional, high-quality response that adheres to these standards.")
	return sb.String()
}

func contentPrompt(in Input) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following content based on content quality guidelines. ")
	sb.WriteString("Provide a detailed evaluation of how well the content adheres to each guideline, ")
	sb.WriteString("followed by one actionable suggestion where improvement is possible.\n\n")
	sb.WriteString("Address each point directly, without unnecessary verbosity, and keep the order of the guidelines. ")
	sb.WriteString("Format each guideline on its own line exactly as:\n\n")
	for _, label := range ContentLabels {
		sb.WriteString(label)
		sb.WriteString(": [Your analysis here] Suggestions: [Your suggestion here, or leave blank]\n\n")
	}
	sb.WriteString("Blog Content:\n")
	sb.WriteString(in.Content)
	sb.WriteString("\n\nContent Quality Guidelines:\n")
	for i, label := range ContentLabels {
		sb.WriteString("    ")
		sb.WriteString(label)
		sb.WriteString(": ")
		sb.WriteString(contentGuidelines[i])
		sb.WriteString("\n")
	}
	sb.WriteString("\nThe evaluation should deliver a professional, high-quality response that adheres to these standards.")
	return sb.String()
}

func linkPrompt(in Input) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following page content and evaluate its link structure according to the guidelines provided. ")
	sb.WriteString("Respond with one line per guideline in the strict format 'Label: analysis'.\n\n")
	sb.WriteString("Guidelines:\n")
	sb.WriteString(LinkLabels[0] + ": Is there evidence of internal links on the page?\n")
	sb.WriteString(LinkLabels[1] + ": Do internal links use descriptive anchor text?\n")
	sb.WriteString(LinkLabels[2] + ": Are important internal links prioritized and placed first?\n")
	sb.WriteString(LinkLabels[3] + ": Is there evidence of breadcrumb navigation?\n")
	sb.WriteString(LinkLabels[4] + ": Are the internal links useful to the reader?\n")
	sb.WriteString(LinkLabels[5] + ": Do internal links use preferred, canonical URLs? State if this cannot be determined from the content.\n")
	sb.WriteString(LinkLabels[6] + ": Does the page likely include external links to relevant sources or partners? Base your answer on what is likely given the context.\n")
	sb.WriteString(LinkLabels[7] + ": Are affiliate, sponsored or paid links likely using the NoFollow tag? State if this is an inference or cannot be determined.\n")
	sb.WriteString(LinkLabels[8] + ": Are external links likely set to open in a new window? State if this is an inference or cannot be determined.\n")
	sb.WriteString(LinkLabels[9] + ": Based on the content, might there be broken links on the page? Say so if this cannot be ascertained.\n")
	sb.WriteString("\nPage Content:\n")
	if strings.TrimSpace(in.FullText) != "" {
		sb.WriteString(in.FullText)
	} else {
		sb.WriteString(in.Content)
	}
	return sb.String()
}
