// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/ftree/internal/config"
	"github.com/temirov/ftree/internal/services/clipboard"
	"github.com/temirov/ftree/internal/tree"
	"github.com/temirov/ftree/internal/utils"
)

const (
	gitFlagName          = "git"
	excludeFlagName      = "exclude"
	excludeFlagShorthand = "e"
	summaryFlagName      = "summary"
	copyFlagName         = "copy"
	configFlagName       = "config"
	versionFlagName      = "version"
	versionTemplate      = "ftree version: %s\n"
	defaultPath          = "."

	rootUse              = "ftree [path]"
	rootShortDescription = "render a directory as a tree diagram"
	rootLongDescription  = `ftree renders a file-system directory as a tree diagram.
Use --git to suppress git metadata entries.
Entries within each directory are listed in byte-wise ascending name order.`
	rootUsageExample = `  # Render the current directory
  ftree

  # Render a project without git metadata
  ftree --git ./project

  # Exclude build artifacts and copy the output to the clipboard
  ftree -e 'vendor/' -e '*.log' --copy .`

	gitFlagDescription      = "exclude git metadata entries (.git, .gitignore, .gitattributes, .gitmodules, .gitkeep)"
	excludeFlagDescription  = "exclude path pattern"
	summaryFlagDescription  = "append a summary of rendered entries"
	copyFlagDescription     = "copy the rendered tree to the system clipboard"
	configFlagDescription   = "path to configuration file"
	versionFlagDescription  = "display application version"
	warningClipboardMessage = "Warning: unable to copy output to clipboard: %v\n"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
)

// Execute runs the ftree application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// treeOptions stores the resolved options for one invocation.
type treeOptions struct {
	targetPath          string
	gitExclusionEnabled bool
	exclusionPatterns   []string
	summaryEnabled      bool
	copyEnabled         bool
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var gitExclusionEnabled bool
	var exclusionPatterns []string
	var summaryEnabled bool
	var copyEnabled bool
	var configurationFilePath string

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}

			workingDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
			}
			applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: workingDirectory,
				ExplicitFilePath: configurationFilePath,
			})
			if configurationError != nil {
				return configurationError
			}

			commandFlags := command.Flags()
			if !commandFlags.Changed(gitFlagName) && applicationConfiguration.Git != nil {
				gitExclusionEnabled = *applicationConfiguration.Git
			}
			if !commandFlags.Changed(summaryFlagName) && applicationConfiguration.Summary != nil {
				summaryEnabled = *applicationConfiguration.Summary
			}
			if !commandFlags.Changed(copyFlagName) && applicationConfiguration.Clipboard != nil {
				copyEnabled = *applicationConfiguration.Clipboard
			}
			combinedPatterns := utils.DeduplicatePatterns(append(append([]string{}, applicationConfiguration.Exclude...), exclusionPatterns...))

			targetPath := defaultPath
			if len(arguments) == 1 {
				targetPath = arguments[0]
			}

			return runTree(command, treeOptions{
				targetPath:          targetPath,
				gitExclusionEnabled: gitExclusionEnabled,
				exclusionPatterns:   combinedPatterns,
				summaryEnabled:      summaryEnabled,
				copyEnabled:         copyEnabled,
			})
		},
	}

	rootCommand.Flags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().BoolVar(&gitExclusionEnabled, gitFlagName, false, gitFlagDescription)
	rootCommand.Flags().StringArrayVarP(&exclusionPatterns, excludeFlagName, excludeFlagShorthand, nil, excludeFlagDescription)
	rootCommand.Flags().BoolVar(&summaryEnabled, summaryFlagName, false, summaryFlagDescription)
	rootCommand.Flags().BoolVar(&copyEnabled, copyFlagName, false, copyFlagDescription)
	rootCommand.Flags().StringVar(&configurationFilePath, configFlagName, "", configFlagDescription)
	return rootCommand
}

// runTree builds and renders the tree for the resolved options.
func runTree(command *cobra.Command, options treeOptions) error {
	loggerInstance, loggerCreationError := utils.NewApplicationLogger()
	if loggerCreationError != nil {
		return fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerCreationError)
	}
	defer loggerInstance.Sync()

	var exclusionRules []tree.Rule
	if options.gitExclusionEnabled {
		exclusionRules = append(exclusionRules, tree.GitMetadataRule())
	}
	if len(options.exclusionPatterns) > 0 {
		exclusionRules = append(exclusionRules, tree.PatternRule(options.exclusionPatterns))
	}

	treeBuilder := &tree.Builder{
		Exclude: tree.CombineRules(exclusionRules...),
		Logger:  loggerInstance,
	}
	rootNode, buildError := treeBuilder.Build(options.targetPath)
	if buildError != nil {
		return buildError
	}

	var outputBuilder strings.Builder
	outputBuilder.WriteString(tree.RootSentinel)
	outputBuilder.WriteByte('\n')
	for _, line := range tree.Render(rootNode) {
		outputBuilder.WriteString(line)
		outputBuilder.WriteByte('\n')
	}
	if options.summaryEnabled {
		outputBuilder.WriteByte('\n')
		outputBuilder.WriteString(tree.FormatSummaryLine(tree.Summarize(rootNode)))
		outputBuilder.WriteByte('\n')
	}

	renderedOutput := outputBuilder.String()
	fmt.Fprint(command.OutOrStdout(), renderedOutput)

	if options.copyEnabled {
		clipboardService := clipboard.NewService()
		if copyError := clipboardService.Copy(renderedOutput); copyError != nil {
			fmt.Fprintf(command.ErrOrStderr(), warningClipboardMessage, copyError)
		}
	}
	return nil
}
