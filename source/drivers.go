// Package source selects the process-wide JSON driver by name.
package source

import (
	"fmt"
	"sort"

	"github.com/fishbait/customs"
	drvgojson "github.com/fishbait/customs/source/gojson"
)

var drivers = map[string]func() customs.JSONDriver{
	"encoding/json": customs.DefaultJSONDriver,
	"go-json":       drvgojson.Driver,
}

// Select installs the named JSON driver for customs.JSONBytes/JSONReader.
// The empty name keeps the current driver.
func Select(name string) error {
	if name == "" {
		return nil
	}
	mk, ok := drivers[name]
	if !ok {
		return fmt.Errorf("unknown json driver %q (want one of %v)", name, Names())
	}
	customs.SetJSONDriver(mk())
	return nil
}

// Names lists the selectable driver names in sorted order.
func Names() []string {
	out := make([]string, 0, len(drivers))
	for n := range drivers {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
