// Package conf reads the grammar-specific names an MRS uses for roles,
// link post tokens and sort-info keys.
package conf

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/davidmoeljadi/pydelphin/nlp/mrs"
)

const (
	ENV_STRINGPRED_POLICY = "DELPHIN_STRINGPRED_POLICY"
	ENV_IVARG_ROLE        = "DELPHIN_IVARG_ROLE"
)

// Empty fields keep the package defaults of nlp/mrs.
type Conf struct {
	Roles struct {
		Intrinsic   string `yaml:"intrinsic"`
		Constant    string `yaml:"constant"`
		Restriction string `yaml:"restriction"`
	} `yaml:"roles"`
	SortInfo struct {
		CVarSort string `yaml:"cvarsort"`
	} `yaml:"sortinfo"`
	Posts struct {
		EQ  string `yaml:"eq"`
		HEQ string `yaml:"heq"`
		NEQ string `yaml:"neq"`
		H   string `yaml:"h"`
		NIL string `yaml:"nil"`
	} `yaml:"posts"`
	StringPredPolicy string `yaml:"stringpred_policy"`
}

func Read(reader io.Reader) (*Conf, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	c := new(Conf)
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	c.overrideFromEnv()
	return c, nil
}

// ReadFile loads a .env file from the working directory if one exists,
// then reads the yaml configuration in filename.
func ReadFile(filename string) (*Conf, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed reading .env: %w", err)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}

func (c *Conf) overrideFromEnv() {
	if policy := os.Getenv(ENV_STRINGPRED_POLICY); policy != "" {
		c.StringPredPolicy = policy
	}
	if role := os.Getenv(ENV_IVARG_ROLE); role != "" {
		c.Roles.Intrinsic = role
	}
}

// Apply writes the configured values into the nlp/mrs package variables.
func (c *Conf) Apply() error {
	var policy mrs.MalformedPolicy
	if c.StringPredPolicy != "" {
		var ok bool
		policy, ok = mrs.ParseMalformedPolicy(c.StringPredPolicy)
		if !ok {
			return fmt.Errorf("unknown stringpred policy %q", c.StringPredPolicy)
		}
	}
	set := func(target *string, value string) {
		if value != "" {
			*target = value
		}
	}
	set(&mrs.IVARG_ROLE, c.Roles.Intrinsic)
	set(&mrs.CONSTARG_ROLE, c.Roles.Constant)
	set(&mrs.RSTR_ROLE, c.Roles.Restriction)
	set(&mrs.CVARSORT, c.SortInfo.CVarSort)
	set(&mrs.EQ_POST, c.Posts.EQ)
	set(&mrs.HEQ_POST, c.Posts.HEQ)
	set(&mrs.NEQ_POST, c.Posts.NEQ)
	set(&mrs.H_POST, c.Posts.H)
	set(&mrs.NIL_POST, c.Posts.NIL)
	if c.StringPredPolicy != "" {
		mrs.STRINGPRED_POLICY = policy
	}
	return nil
}
