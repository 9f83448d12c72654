package cmd_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entityvalidator/cmd/entitycheck/cmd"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := cmd.NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestValidate_YAML(t *testing.T) {
	stdout, _, err := run(t, "", "validate", "--log-level", "error", "testdata/customers.yaml")

	require.ErrorIs(t, err, cmd.ErrRecordsFailed)
	assert.Contains(t, err.Error(), "3 of 4")

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "record 0: ok", lines[0])
	assert.Equal(t, "record 1: Email address is not valid.", lines[1])
	assert.Equal(t, "record 2: VAT number is required for business customers.", lines[2])
	assert.Equal(t, `record 3: malformed: malformed customer record: birth_date: parsing time "12/24/1980" as "2006-01-02": cannot parse "12/24/1980" as "2006"`, lines[3])
}

func TestValidate_MalformedRecordsStayOnOneLine(t *testing.T) {
	input := `
- name: Ada
  credit_limit: lots
- name: [not, a, string]
  email: [still, not]
`
	stdout, _, err := run(t, input, "validate", "--log-level", "error", "-")
	require.ErrorIs(t, err, cmd.ErrRecordsFailed)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "record 0: malformed: malformed customer record: credit_limit: "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "record 1: malformed: malformed customer record: yaml: unmarshal errors:; "), lines[1])
}

func TestValidate_AsyncLogsEveryRecord(t *testing.T) {
	_, stderr, err := run(t, "", "validate", "--async", "--log-level", "debug", "--log-format", "text", "testdata/customers.json")
	require.ErrorIs(t, err, cmd.ErrRecordsFailed)

	assert.Equal(t, 2, strings.Count(stderr, `msg="record validated"`))
	assert.Contains(t, stderr, "outcome.passed=false")
}

func TestExecute_ErrorsAreNotPrinted(t *testing.T) {
	_, stderr, err := run(t, "", "validate", "--log-level", "error", "testdata/customers.json")
	require.ErrorIs(t, err, cmd.ErrRecordsFailed)
	assert.NotContains(t, stderr, "Error:")
}

func TestValidate_JSONAsync(t *testing.T) {
	stdout, _, err := run(t, "", "validate", "--async", "--log-level", "error", "testdata/customers.json")

	require.ErrorIs(t, err, cmd.ErrRecordsFailed)
	assert.Equal(t, "record 0: ok\nrecord 1: The value must not exceed 1000000.\n", stdout)
}

func TestValidate_AsyncMatchesSync(t *testing.T) {
	syncOut, _, _ := run(t, "", "validate", "--log-level", "error", "testdata/customers.yaml")
	asyncOut, _, _ := run(t, "", "validate", "--async", "--log-level", "error", "testdata/customers.yaml")
	assert.Equal(t, syncOut, asyncOut)
}

func TestValidate_Stdin(t *testing.T) {
	input := `
- id: 6f1c2a7e-3b4d-4e5f-8a9b-0c1d2e3f4a5b
  name: Ada
  email: ada@example.com
  country: GB
  timezone: Europe/London
  status: active
`
	stdout, _, err := run(t, input, "validate", "--log-level", "error", "-")
	require.NoError(t, err)
	assert.Equal(t, "record 0: ok\n", stdout)
}

func TestValidate_Errors(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		_, _, err := run(t, "", "validate", "--kind", "invoice", "testdata/customers.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown kind "invoice"`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "", "validate", "testdata/missing.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read records")
	})

	t.Run("not a list", func(t *testing.T) {
		_, _, err := run(t, "name: Ada\n", "validate", "-")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode records")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := run(t, "", "validate", "--log-level", "loud", "testdata/customers.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("bad log format", func(t *testing.T) {
		_, _, err := run(t, "", "kinds", "--log-format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log format")
	})
}

func TestValidate_LogsFromEnvFile(t *testing.T) {
	_, stderr, err := run(t, "", "validate", "--env-file", "testdata/settings.env", "testdata/customers.json")
	require.ErrorIs(t, err, cmd.ErrRecordsFailed)

	assert.NotContains(t, stderr, "Error:")

	var finished map[string]any
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		if entry["msg"] == "validation finished" {
			finished = entry
		}
	}
	require.NotNil(t, finished)
	assert.Equal(t, "entitycheck", finished["service"])
	assert.Equal(t, "production", finished["env"])
	assert.Equal(t, "customer", finished["kind"])
	assert.Equal(t, "testdata/customers.json", finished["source"])
	assert.EqualValues(t, 2, finished["records"])
	assert.EqualValues(t, 1, finished["failed"])
	assert.NotEmpty(t, finished["run_id"])
}

func TestKinds(t *testing.T) {
	stdout, _, err := run(t, "", "kinds")
	require.NoError(t, err)

	fields := strings.Fields(stdout)
	assert.Equal(t, []string{"customer", "customer.Customer", "registered"}, fields)
}

func TestPhoneCodes(t *testing.T) {
	stdout, _, err := run(t, "", "phone-codes", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 49)
	assert.Equal(t, []string{"AR", `^\+54\s?\d{10}$`}, strings.Fields(lines[0]))
}
