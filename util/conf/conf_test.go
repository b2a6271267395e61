package conf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmoeljadi/pydelphin/nlp/mrs"
)

const testConf = `
roles:
  intrinsic: ARG0
  constant: CARG
  restriction: RESTR
sortinfo:
  cvarsort: CVARSORT
posts:
  neq: NEQ
stringpred_policy: warn
`

func restoreMRS(t *testing.T) {
	ivarg, carg, rstr, cvarsort := mrs.IVARG_ROLE, mrs.CONSTARG_ROLE, mrs.RSTR_ROLE, mrs.CVARSORT
	eq, heq, neq, h, nilPost := mrs.EQ_POST, mrs.HEQ_POST, mrs.NEQ_POST, mrs.H_POST, mrs.NIL_POST
	policy := mrs.STRINGPRED_POLICY
	t.Cleanup(func() {
		mrs.IVARG_ROLE, mrs.CONSTARG_ROLE, mrs.RSTR_ROLE, mrs.CVARSORT = ivarg, carg, rstr, cvarsort
		mrs.EQ_POST, mrs.HEQ_POST, mrs.NEQ_POST, mrs.H_POST, mrs.NIL_POST = eq, heq, neq, h, nilPost
		mrs.STRINGPRED_POLICY = policy
	})
}

func TestRead(t *testing.T) {
	c, err := Read(strings.NewReader(testConf))
	require.NoError(t, err)
	assert.Equal(t, "ARG0", c.Roles.Intrinsic)
	assert.Equal(t, "RESTR", c.Roles.Restriction)
	assert.Equal(t, "CVARSORT", c.SortInfo.CVarSort)
	assert.Equal(t, "NEQ", c.Posts.NEQ)
	assert.Empty(t, c.Posts.EQ)
	assert.Equal(t, "warn", c.StringPredPolicy)

	_, err = Read(strings.NewReader("roles: [unterminated"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	restoreMRS(t)
	c, err := Read(strings.NewReader(testConf))
	require.NoError(t, err)
	require.NoError(t, c.Apply())

	assert.Equal(t, "RESTR", mrs.RSTR_ROLE)
	assert.Equal(t, "CVARSORT", mrs.CVARSORT)
	assert.Equal(t, mrs.PolicyWarn, mrs.STRINGPRED_POLICY)
	// unset values keep their defaults
	assert.Equal(t, "EQ", mrs.EQ_POST)

	n, err := mrs.NewNode(mrs.FIRST_NODEID, mrs.StringPred("_dog_n_rel"), nil, nil)
	require.NoError(t, err)
	n.SetCVarSort("x")
	assert.Equal(t, mrs.SortInfo{"CVARSORT": "x"}, n.SortInfo)
}

func TestApplyUnknownPolicy(t *testing.T) {
	restoreMRS(t)
	c := &Conf{StringPredPolicy: "loud"}
	c.Roles.Intrinsic = "IV"
	assert.Error(t, c.Apply())
	assert.Equal(t, "ARG0", mrs.IVARG_ROLE)
}

func TestEnvOverride(t *testing.T) {
	restoreMRS(t)
	t.Setenv(ENV_IVARG_ROLE, "INST")
	t.Setenv(ENV_STRINGPRED_POLICY, "silent")

	c, err := Read(strings.NewReader(testConf))
	require.NoError(t, err)
	assert.Equal(t, "INST", c.Roles.Intrinsic)
	assert.Equal(t, "silent", c.StringPredPolicy)
	require.NoError(t, c.Apply())

	x, err := mrs.NewVariable("x2", map[string]string{"num": "sg"})
	require.NoError(t, err)
	e, err := mrs.NewElementaryPredication(10, mrs.StringPred("_dog_n_rel"), mustHandle(t), mrs.Args{"INST": x}, nil)
	require.NoError(t, err)
	assert.Equal(t, mrs.Properties{"num": "sg"}, e.Properties())
}

func TestReadFile(t *testing.T) {
	restoreMRS(t)
	dir := t.TempDir()
	filename := filepath.Join(dir, "mrs.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(testConf), 0o644))

	c, err := ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "CARG", c.Roles.Constant)

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestReadFileDotEnv(t *testing.T) {
	restoreMRS(t)
	dir := t.TempDir()
	filename := filepath.Join(dir, "mrs.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(testConf), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	// no .env in the working directory is fine
	_, err = ReadFile(filename)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0o644))
	_, err = ReadFile(filename)
	assert.Error(t, err)
}

func mustHandle(t *testing.T) *mrs.Variable {
	h, err := mrs.NewVariable("h1", nil)
	require.NoError(t, err)
	return h
}
