package tests_test

import (
	"testing"

	"github.com/containerd/nerdctl/mod/tigron/expect"
	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/texsieve/texsieve/tests/testutils"
)

func TestCompileCLI(t *testing.T) {
	binary := testutils.Binary()

	testCase := &test.Case{}

	testCase.SubTests = []*test.Case{
		{
			Description: "compile without arguments fails",
			Command: func(_ test.Data, helpers test.Helpers) test.TestableCommand {
				return helpers.Custom(binary, "compile")
			},
			Expected: test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
		{
			Description: "compile with unavailable engine fails",
			Command: func(_ test.Data, helpers test.Helpers) test.TestableCommand {
				return helpers.Custom(
					binary,
					"compile",
					"--engine",
					"definitely-not-a-tex-engine",
					testutils.Testdata("doc/main.tex"),
				)
			},
			Expected: test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
	}

	testCase.Run(t)
}
