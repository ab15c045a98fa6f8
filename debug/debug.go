package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Titles    bool
	Bookmarks bool
	Rewrite   bool
	APIFunc   bool
	Walk      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Titles = boolEnv("SPHINXMD_DEBUG_TITLES")
	d.Bookmarks = boolEnv("SPHINXMD_DEBUG_BOOKMARKS")
	d.Rewrite = boolEnv("SPHINXMD_DEBUG_REWRITE")
	d.APIFunc = boolEnv("SPHINXMD_DEBUG_APIFUNC")
	d.Walk = boolEnv("SPHINXMD_DEBUG_WALK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Titles() bool {
	return d.Titles
}
func Bookmarks() bool {
	return d.Bookmarks
}
func Rewrite() bool {
	return d.Rewrite
}
func APIFunc() bool {
	return d.APIFunc
}
func Walk() bool {
	return d.Walk
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
