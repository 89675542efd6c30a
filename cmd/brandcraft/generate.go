package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/brandcraft/internal/synth"
	"github.com/jonathan/brandcraft/internal/types"
)

var generateJSON bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run one generator offline",
	Long:  "Runs a single BrandCraft generator locally without a database or server and prints the result.",
}

var (
	namesReq     types.BrandNameRequest
	logosReq     types.LogoRequest
	identityReq  types.IdentityRequest
	contentReq   types.ContentRequest
	sentimentReq types.SentimentRequest
	chatReq      types.ChatRequest
)

var generateNamesCmd = &cobra.Command{
	Use:   "names",
	Short: "Suggest brand names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, p, err := generator(cmd, &namesReq)
		if err != nil {
			return err
		}
		return p.BrandNames(types.BrandNameResponse{
			BrandNames: engine.BrandNames(namesReq.Industry, namesReq.Keywords, namesReq.TargetAudience, namesReq.Tone),
			Industry:   namesReq.Industry,
			Tone:       namesReq.Tone,
		})
	},
}

var generateLogosCmd = &cobra.Command{
	Use:   "logos",
	Short: "Produce placeholder logo concepts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, p, err := generator(cmd, &logosReq)
		if err != nil {
			return err
		}
		return p.Logos(types.LogoResponse{
			Logos:     engine.Logos(logosReq.BrandName, logosReq.Style, logosReq.PrimaryColor, logosReq.SecondaryColor),
			BrandName: logosReq.BrandName,
			Style:     logosReq.Style,
		})
	},
}

var generateIdentityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Write mission, vision, values, tagline and story",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, p, err := generator(cmd, &identityReq)
		if err != nil {
			return err
		}
		return p.Identity(identityReq.BrandName, engine.Identity(identityReq.BrandName, identityReq.Industry, identityReq.TargetAudience))
	},
}

var generateContentCmd = &cobra.Command{
	Use:   "content",
	Short: "Write marketing copy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, p, err := generator(cmd, &contentReq)
		if err != nil {
			return err
		}
		contentReq.Normalize()
		return p.Content(engine.Content(contentReq.BrandName, contentReq.ContentType, contentReq.Tone, contentReq.Keywords, contentReq.Length))
	},
}

var generateSentimentCmd = &cobra.Command{
	Use:   "sentiment [text]",
	Short: "Score the sentiment of text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			sentimentReq.Text = args[0]
		}
		engine, p, err := generator(cmd, &sentimentReq)
		if err != nil {
			return err
		}
		return p.Sentiment(engine.Sentiment(sentimentReq.Text))
	},
}

var generateChatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the branding consultant",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chatReq.Message = strings.Join(args, " ")
		engine, p, err := generator(cmd, &chatReq)
		if err != nil {
			return err
		}
		return p.Chat(engine.Chat(chatReq.Message, chatReq.Context))
	},
}

func init() {
	generateCmd.PersistentFlags().BoolVar(&generateJSON, "json", false, "Print the raw JSON result")

	f := generateNamesCmd.Flags()
	f.StringVar(&namesReq.Industry, "industry", "", "Industry the brand operates in (required)")
	f.StringVar(&namesReq.Keywords, "keywords", "", "Comma-separated keywords to blend into names")
	f.StringVar(&namesReq.TargetAudience, "audience", "", "Who the brand is for")
	f.StringVar(&namesReq.Tone, "tone", "professional", "professional, playful, modern or bold")

	f = generateLogosCmd.Flags()
	f.StringVar(&logosReq.BrandName, "brand", "", "Brand name (required)")
	f.StringVar(&logosReq.Style, "style", "minimal", "minimal, modern, vintage or tech")
	f.StringVar(&logosReq.PrimaryColor, "primary", "#000000", "Primary color")
	f.StringVar(&logosReq.SecondaryColor, "secondary", "#FFFFFF", "Secondary color")

	f = generateIdentityCmd.Flags()
	f.StringVar(&identityReq.BrandName, "brand", "", "Brand name (required)")
	f.StringVar(&identityReq.Industry, "industry", "", "Industry the brand operates in")
	f.StringVar(&identityReq.TargetAudience, "audience", "", "Who the brand is for")

	f = generateContentCmd.Flags()
	f.StringVar(&contentReq.BrandName, "brand", "", "Brand name (required)")
	f.StringVar(&contentReq.ContentType, "type", "social_post", "social_post, ad_copy, blog or email")
	f.StringVar(&contentReq.Tone, "tone", "professional", "Desired tone")
	f.StringVar(&contentReq.Keywords, "keywords", "", "Comma-separated SEO keywords")
	f.StringVar(&contentReq.Length, "length", types.DefaultContentLength, "short, medium or long")

	generateSentimentCmd.Flags().StringVar(&sentimentReq.Text, "text", "", "Text to analyze")
	generateChatCmd.Flags().StringVar(&chatReq.Context, "context", "", "Optional conversation context")

	if err := generateNamesCmd.MarkFlagRequired("industry"); err != nil {
		panic(fmt.Sprintf("failed to mark industry flag as required: %v", err))
	}
	for _, c := range []*cobra.Command{generateLogosCmd, generateIdentityCmd, generateContentCmd} {
		if err := c.MarkFlagRequired("brand"); err != nil {
			panic(fmt.Sprintf("failed to mark brand flag as required: %v", err))
		}
	}

	generateCmd.AddCommand(
		generateNamesCmd,
		generateLogosCmd,
		generateIdentityCmd,
		generateContentCmd,
		generateSentimentCmd,
		generateChatCmd,
	)
	rootCmd.AddCommand(generateCmd)
}

// validatable is implemented by every request DTO.
type validatable interface {
	Validate() error
}

// generator validates req and returns an engine and printer for cmd.
func generator(cmd *cobra.Command, req validatable) (*synth.Engine, *printer, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid arguments: %w", err)
	}
	engine, err := synth.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load generation catalog: %w", err)
	}
	return engine, newPrinter(cmd.OutOrStdout(), generateJSON), nil
}
