package impact

// Fixed recommendation lists, attached to a category only when its score
// drops below rules.RecommendationThreshold.

var visualRecommendations = []string{
	"Add landmark regions (main, nav, header, footer) so screen reader users can navigate between page areas",
	"Give every image meaningful alternative text, or mark decorative images with an empty alt and a presentation role",
	"Ensure every focusable element shows a visible focus indicator",
	"Remove user-scalable=no from the viewport meta so low-vision users can zoom",
}

var auditoryRecommendations = []string{
	"Provide caption or subtitle tracks for all video content",
	"Publish transcripts alongside audio content",
	"Never autoplay audio; let users start playback themselves",
}

var motorRecommendations = []string{
	"Keep all interactive elements in the keyboard tab order",
	"Make click targets at least 44x44 pixels",
	"Add a skip link so keyboard users can bypass repeated navigation",
}

var cognitiveRecommendations = []string{
	"Add help text near complex form fields (email, password, phone, selects)",
	"Avoid session timeouts, or let users extend them",
	"Remove blinking and continuously moving content",
	"Prefer short sentences and plain language",
}
