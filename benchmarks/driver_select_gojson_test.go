//go:build gojson

package benchmarks_test

import (
	"github.com/fishbait/customs"
	drv "github.com/fishbait/customs/source/gojson"
)

func init() {
	customs.SetJSONDriver(drv.Driver())
}
