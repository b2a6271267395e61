package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonuts/commander"

	"github.com/davidmoeljadi/pydelphin/util/conf"
)

var (
	allOut bool

	// file names
	confFile string

	Out io.Writer = os.Stdout
)

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) error {
	for _, flag := range required {
		f := cmd.Flag.Lookup(flag)
		if f == nil || f.Value.String() == "" {
			log.Printf("Required flag %s not set", flag)
			cmd.Usage()
			return fmt.Errorf("required flag -%s not set", flag)
		}
	}
	return nil
}

// SetupConf applies the -conf file, if any, to the mrs package.
func SetupConf() error {
	if confFile == "" {
		return nil
	}
	if !VerifyExists(confFile) {
		return fmt.Errorf("configuration file %s not found", confFile)
	}
	c, err := conf.ReadFile(confFile)
	if err != nil {
		log.Println("Failed reading configuration file:", confFile)
		return err
	}
	if err := c.Apply(); err != nil {
		return err
	}
	if allOut {
		log.Printf("Configuration:\t\t%s", confFile)
	}
	return nil
}

func addCommonFlags(cmd *commander.Command) {
	cmd.Flag.StringVar(&confFile, "conf", "", "Optional - MRS configuration file (yaml)")
	cmd.Flag.BoolVar(&allOut, "v", false, "Verbose logging")
}

func printField(name string, value interface{}) {
	fmt.Fprintf(Out, "%s:\t%v\n", name, value)
}

func orUnderscore(s string) string {
	if s == "" {
		return "_"
	}
	return s
}
