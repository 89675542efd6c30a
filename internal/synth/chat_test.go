package synth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_Intents(t *testing.T) {
	e := MustNew()

	tests := []struct {
		message      string
		wantIntent   string
		wantPrefix   string
		wantSuggests int
	}{
		{"Can you do a SWOT for us?", "swot", "**SWOT Analysis for Your Brand:**", 3},
		{"what are our main strengths", "swot", "**SWOT Analysis for Your Brand:**", 3},
		{"How should we position ourselves?", "positioning", "**Market Positioning Strategy:**", 3},
		{"who is our biggest competitor", "positioning", "**Market Positioning Strategy:**", 3},
		{"Ideas for a launch campaign", "campaign", "**Marketing Campaign Ideas:**", 3},
		{"how do I advertise", "campaign", "**Marketing Campaign Ideas:**", 3},
		{"hello there", "general", "Thanks for your question!", 4},
		{"", "general", "Thanks for your question!", 4},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.wantIntent, e.Intent(tt.message))

			reply := e.Chat(tt.message, "")
			assert.True(t, strings.HasPrefix(reply.Response, tt.wantPrefix), "response %q", reply.Response)
			assert.Len(t, reply.Suggestions, tt.wantSuggests)
		})
	}
}

func TestChat_FirstIntentWins(t *testing.T) {
	e := MustNew()

	// "swot" and "campaign" both match; SWOT is checked first.
	assert.Equal(t, "swot", e.Intent("swot for my campaign"))
	// "marketing" is a campaign keyword but "market" (positioning) is found first.
	assert.Equal(t, "positioning", e.Intent("marketing plan"))
}

func TestChat_ContextIgnored(t *testing.T) {
	e := MustNew()

	a := e.Chat("swot please", "")
	b := e.Chat("swot please", "we sell bread to families")
	assert.Equal(t, a, b)
}

const (
	swotReply = `**SWOT Analysis for Your Brand:**

**Strengths:**
• Innovative AI-powered approach sets you apart from competitors
• Strong digital presence with modern, user-friendly design
• Cost-effective solution for startups and small businesses

**Weaknesses:**
• Limited brand recognition in the initial launch phase
• Dependence on AI may concern traditional customers
• Requires continuous model updates and maintenance

**Opportunities:**
• Growing demand for automated branding solutions
• Expansion into emerging markets and new industries
• Partnership potential with marketing agencies and design platforms

**Threats:**
• Established competitors with larger budgets and market share
• Rapid changes in AI technology landscape
• Economic downturns affecting startup funding and spending

I recommend focusing on your strengths while addressing weaknesses through targeted content marketing and customer education campaigns.`

	positioningReply = `**Market Positioning Strategy:**

To effectively position your brand, I recommend the **"Innovative Disruptor"** positioning strategy:

1. **Identify Your Niche:** Focus on startups and small businesses who need affordable, fast branding solutions
2. **Unique Value Proposition:** "Professional branding in minutes, not months — powered by AI"
3. **Price Positioning:** Position as premium-quality at mid-market pricing
4. **Channel Strategy:** Focus on digital channels — content marketing, social media, and partnerships
5. **Differentiation:** Emphasize the AI advantage, speed, and cost savings vs. traditional agencies

**Key Message Framework:**
- For investors: "We're automating a $50B branding industry"
- For customers: "Your brand, perfected by AI, in under 10 minutes"
- For partners: "The future of branding workflow automation"` + " "

	campaignReply = `**Marketing Campaign Ideas:**

🎯 **Campaign 1: "Brand in a Minute" Challenge**
- Social media campaign showing real-time brand creation
- User-generated content from beta testers
- Viral potential with time-lapse brand building videos

📱 **Campaign 2: "Before & After" Series**
- Showcase brand transformations
- Side-by-side comparisons of DIY vs AI-generated branding
- Testimonials from early adopters

🤝 **Campaign 3: "Startup Launch Kit" Partnership**
- Partner with accelerators and incubators
- Offer free brand kits for accepted startups
- Build word-of-mouth in the entrepreneur community

📧 **Campaign 4: "AI Brand Audit" Lead Magnet**
- Free brand health check tool
- Email capture for lead nurturing
- Segmented follow-up sequences based on score

**Recommended Budget Split:**
- Social Media: 35%
- Content Marketing: 25%
- Partnerships: 20%
- Paid Ads: 15%
- PR: 5%`

	generalReply = `Thanks for your question! As your AI Branding Consultant, here's my advice:

**Brand Strategy Insights:**

1. **Consistency is Key:** Ensure your brand voice, colors, and messaging align across all platforms
2. **Know Your Audience:** Deep understanding of your target market drives every branding decision
3. **Tell a Story:** Brands that tell compelling stories create emotional connections
4. **Be Authentic:** Modern consumers value transparency and authenticity
5. **Measure & Iterate:** Use sentiment analysis and engagement metrics to continuously improve

**Quick Action Items:**
- ✅ Generate your brand name and logo first — they're the foundation
- ✅ Build your brand identity (mission, vision, values) to guide all decisions
- ✅ Create a content calendar with AI-generated posts
- ✅ Run sentiment analysis monthly to track brand health
- ✅ Use this consultant for ongoing strategic advice

*What specific aspect of branding would you like to dive deeper into?*`
)

func TestChat_ResponsesVerbatim(t *testing.T) {
	e := MustNew()

	tests := []struct {
		message         string
		wantResponse    string
		wantSuggestions []string
	}{
		{"swot", swotReply, []string{
			"Run a competitive analysis",
			"Define your unique value proposition",
			"Create a customer feedback loop",
		}},
		{"position", positioningReply, []string{
			"Analyze top 5 competitors",
			"Create a positioning map",
			"Define target customer personas",
		}},
		{"campaign", campaignReply, []string{
			"Start with Campaign 1 for viral potential",
			"Set up tracking for each campaign",
			"A/B test ad creatives",
		}},
		{"hello", generalReply, []string{
			"Tell me about your brand's target audience",
			"Generate a SWOT analysis",
			"Get marketing campaign ideas",
			"Discuss brand positioning",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			reply := e.Chat(tt.message, "")
			assert.Equal(t, tt.wantResponse, reply.Response)
			assert.Equal(t, tt.wantSuggestions, reply.Suggestions)
		})
	}

	assert.True(t, strings.HasSuffix(e.Chat("position", "").Response, `automation" `))
}

func TestChat_SuggestionsAreCopies(t *testing.T) {
	e := MustNew()

	reply := e.Chat("hi", "")
	require.NotEmpty(t, reply.Suggestions)
	reply.Suggestions[0] = "mutated"

	assert.Equal(t, "Tell me about your brand's target audience", e.Chat("hi", "").Suggestions[0])
}
