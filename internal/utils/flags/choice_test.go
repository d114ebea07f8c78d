package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatChoiceUsage(t *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedOutput string
	}{
		{
			name:           "DefaultLevelHighlighted",
			defaultChoice:  "INFO",
			choices:        []string{"trace", "debug", "info", "warn", "error", "off"},
			description:    "Log verbosity.",
			expectedOutput: "`<trace|debug|INFO|warn|error|off>` Log verbosity.",
		},
		{
			name:           "DefaultFormatHighlighted",
			defaultChoice:  "console",
			choices:        []string{"structured", "console"},
			description:    "Log encoding.",
			expectedOutput: "`<structured|CONSOLE>` Log encoding.",
		},
		{
			name:           "EmptyDescription",
			defaultChoice:  "warn",
			choices:        []string{"warn", "error"},
			description:    "",
			expectedOutput: "`<WARN|error>`",
		},
		{
			name:           "DuplicateChoicesIgnored",
			defaultChoice:  "debug",
			choices:        []string{"debug", "DEBUG", "trace", "trace"},
			description:    "Select a level.",
			expectedOutput: "`<DEBUG|trace>` Select a level.",
		},
		{
			name:           "WhitespaceTrimmed",
			defaultChoice:  " error ",
			choices:        []string{" info ", " error "},
			description:    "Pick a level.",
			expectedOutput: "`<info|ERROR>` Pick a level.",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description)
			require.Equal(t, testCase.expectedOutput, actual)
		})
	}
}
