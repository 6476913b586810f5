package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/smartresume/resume-matcher/internal/catalog"
	"github.com/smartresume/resume-matcher/internal/filtering"
	applog "github.com/smartresume/resume-matcher/internal/logger"
	"github.com/smartresume/resume-matcher/internal/matching"
	"github.com/smartresume/resume-matcher/internal/resume"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowMatches         = "Show ranked matches"
	PromptReportByCompany     = "Report by company"
	PromptSkillGaps           = "Show skill gaps"
	PromptMatchesToFile       = "Dump matches to file"
	PromptAppendToExcludeFile = "Append matches to exclude file"
	PromptExit                = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Next action?",
	Items: []string{
		PromptShowMatches, PromptReportByCompany, PromptSkillGaps,
		PromptMatchesToFile, PromptAppendToExcludeFile, PromptExit,
	},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match the configured resume against the job catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("tier", "t", "all", "keep only matches in this tier (high, medium, low, all)")
	matchCmd.Flags().Int("min-score", 0, "drop matches scoring below this value")
	matchCmd.Flags().BoolP("auto-approve", "y", false, "print the ranked matches and exit without the interactive menu")
	matchCmd.Flags().StringP("exclude-file", "e", "", "special file with postings to exclude. Default is unset.")

	viper.BindPFlag("exclude-file", matchCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("match.tier", matchCmd.Flags().Lookup("tier"))
	viper.BindPFlag("match.min-score", matchCmd.Flags().Lookup("min-score"))
}

// runMatch is the main command for the cli.
func runMatch(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := applog.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-matcher", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Catalog == "" {
		logger.Fatal("catalog file is required under catalog to score postings")
	}

	if config.Resume == nil {
		logger.Fatal("resume source is required under resume.text or resume.file")
	}

	resumeSource := config.Resume.File
	if resumeSource == "" {
		resumeSource = "inline text"
	}
	logger = applog.WithCommonFields(logger, config.Catalog, resumeSource)

	resumeText, err := resume.Load(resume.Source{
		Text: config.Resume.Text,
		File: config.Resume.File,
	})
	if err != nil {
		logger.Fatal(
			"loading resume text",
			zap.Error(err),
			zap.String("hint", "set RESUME_MATCHER_RESUME_FILE or the resume section in the configuration file"),
		)
	}

	logger.Debug("resume text loaded",
		zap.Int("length", len(resumeText)),
		zap.String("snippet", applog.TruncateForLog(resumeText, 120)),
	)

	jobs, err := catalog.FromFile(config.Catalog)
	if err != nil {
		logger.Fatal("loading the job catalog", zap.Error(err))
	}

	if jobs.Malformed > 0 {
		logger.Warn("skipped malformed catalog records", zap.Int("count", jobs.Malformed))
	}

	logger.Info("loading the job catalog", zap.Int("count", jobs.Len()))

	if jobs.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings in the catalog"))
		return
	}

	vocab := matching.DefaultVocabulary()
	if len(config.Vocabulary) > 0 {
		vocab = matching.NewVocabulary(config.Vocabulary...)
	}

	skills := matching.Extract(resumeText, vocab)
	logger.Info("extracting resume skills",
		zap.Int("vocabulary_size", vocab.Len()),
		zap.Strings("skills", skills),
	)

	matcher := newMatcher(config)
	results := matcher.Match(skills, jobs.Items)

	filters := prepareFilters()
	if statuses, err := json.MarshalIndent(filtering.Describe(filters), "", "  "); err == nil {
		logger.Debug(fmt.Sprintf("filters: \n %s", statuses))
	}

	filtered, err := filtering.Run(ctx, prepareFilterConfig(config, matcher), filtering.Deps{Logger: logger}, filters, results)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	results = filtered

	if results.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no matches left after filters"))
		return
	}

	printMatches(logger, results, matcher.Tiers())

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, results, matcher.Tiers()); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, results *matching.Results, tiers matching.Tiers) error {
	switch action {
	case PromptShowMatches:
		printMatches(logger, results, tiers)
		return nil
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(results.ReportByCompany(tiers), "", "  ")
		logger.Info(string(pretty), zap.Int("matches count", results.Len()))
		return nil
	case PromptSkillGaps:
		pretty, _ := json.MarshalIndent(results.SkillGaps(), "", "  ")
		logger.Info(string(pretty), zap.Int("matches count", results.Len()))
		return nil
	case PromptMatchesToFile:
		filename, err := results.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump matches to file: %w", err)
		}
		logger.Info("dumping matches to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(logger, results)
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func appendToExcludeFile(logger *zap.Logger, results *matching.Results) error {
	path := viper.GetString("exclude-file")
	if path == "" {
		logger.Warn("exclude file is not configured",
			zap.String("hint", "set the exclude-file flag or configuration key"),
		)
		return nil
	}

	seen, err := catalog.SeenJobsFromFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		seen = &catalog.SeenJobs{}
	}

	seen.Append(results.ToSeen())

	if err := seen.ToFile(path); err != nil {
		return err
	}

	logger.Info("appended to exclude file", zap.String("filename", path))
	return nil
}

func printMatches(logger *zap.Logger, results *matching.Results, tiers matching.Tiers) {
	logger.Info("current list of matches", zap.Int("count", results.Len()))

	for _, result := range results.Items {
		logger.Info("match",
			zap.String("title", result.Job.Title),
			zap.String("company", result.Job.Company),
			zap.Int("score", result.Score),
			zap.String("tier", string(tiers.Classify(result.Score))),
			zap.Strings("matched_skills", result.MatchedSkills),
			zap.Strings("missing_skills", result.MissingSkills),
		)
	}
}

func newMatcher(config *Config) *matching.Matcher {
	opts := make([]matching.Option, 0)
	if config.Match != nil {
		opts = append(opts,
			matching.WithWeights(config.Match.RequiredWeight, config.Match.NiceToHaveWeight),
			matching.WithTiers(matching.Tiers{
				High:   config.Match.HighScore,
				Medium: config.Match.MediumScore,
			}),
		)
	}

	return matching.NewMatcher(opts...)
}

func prepareFilters() []filtering.Filter {
	return []filtering.Filter{
		filtering.NewExcludeFile(),
		filtering.NewCompanies(),
		filtering.NewMinScore(),
		filtering.NewTier(),
	}
}

func prepareFilterConfig(config *Config, matcher *matching.Matcher) *filtering.Config {
	cfg := &filtering.Config{
		Tier:     viper.GetString("match.tier"),
		Tiers:    matcher.Tiers(),
		MinScore: viper.GetInt("match.min-score"),
	}

	if config.Exclude != nil {
		cfg.Companies = config.Exclude.Companies
	}

	return cfg
}
