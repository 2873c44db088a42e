package tests_test

import (
	"testing"

	"github.com/containerd/nerdctl/mod/tigron/expect"
	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/texsieve/texsieve/tests/testutils"
)

func TestWordsCLI(t *testing.T) {
	binary := testutils.Binary()

	testCase := &test.Case{}

	testCase.SubTests = []*test.Case{
		{
			Description: "words without arguments fails",
			Command: func(_ test.Data, helpers test.Helpers) test.TestableCommand {
				return helpers.Custom(binary, "words")
			},
			Expected: test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
		{
			Description: "words nonexistent file fails",
			Command: func(_ test.Data, helpers test.Helpers) test.TestableCommand {
				return helpers.Custom(binary, "words", "/nonexistent/path/main.tex")
			},
			Expected: test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
		{
			Description: "words counts the document and its includes",
			Command: func(_ test.Data, helpers test.Helpers) test.TestableCommand {
				return helpers.Custom(binary, "words", testutils.Testdata("doc/main.tex"))
			},
			Expected: func(_ test.Data, _ test.Helpers) *test.Expected {
				return &test.Expected{
					ExitCode: expect.ExitCodeSuccess,
					Output: expect.All(
						expectContains("main.tex: 3 words"),
						expectContains("chapter.tex: 2 words"),
						expectContains("total"),
					),
				}
			},
		},
	}

	testCase.Run(t)
}
