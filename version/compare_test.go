package version

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Should order semantic versions", func() {
			So(lo.Must(Compare("1.0.0", "0.9.9")), ShouldEqual, 1)
			So(lo.Must(Compare("0.1.0", "0.1.1")), ShouldEqual, -1)
			So(lo.Must(Compare("2.3.4", "2.3.4")), ShouldEqual, 0)
		})

		Convey("Should tolerate a leading v", func() {
			So(lo.Must(Compare("v1.2.3", "1.2.3")), ShouldEqual, 0)
		})

		Convey("Should reject malformed versions", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
