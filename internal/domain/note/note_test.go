package note

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAcks(t *testing.T) {
	Convey("Given the note acknowledgements", t, func() {
		Convey("Then reads encode as ok", func() {
			b, err := json.Marshal(ReadAck())
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"message":"ok"}`)
		})

		Convey("And posts encode as posted", func() {
			b, err := json.Marshal(PostAck())
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"message":"posted"}`)
		})

		Convey("And the root failure carries the fixed message", func() {
			So(ErrAPIRoot.Error(), ShouldEqual, "Something bad happened")
		})
	})
}

func TestIndexLinks(t *testing.T) {
	Convey("Given the notes index sequence", t, func() {
		links := slices.Collect(IndexLinks())

		Convey("Then it yields exactly fifteen links in ascending order", func() {
			So(len(links), ShouldEqual, IndexSize)
			for i, l := range links {
				So(l.Index, ShouldEqual, i)
			}
			So(links[0], ShouldResemble, Link{Index: 0, Label: "Note 0", Href: "/notes/0"})
			So(links[14], ShouldResemble, Link{Index: 14, Label: "Note 14", Href: "/notes/14"})
		})

		Convey("And ranging again yields the same links", func() {
			again := slices.Collect(IndexLinks())
			So(cmp.Diff(links, again), ShouldBeEmpty)
		})

		Convey("And stopping early does not yield further links", func() {
			n := 0
			for range IndexLinks() {
				n++
				if n == 3 {
					break
				}
			}
			So(n, ShouldEqual, 3)
		})
	})
}

func TestLinkFor(t *testing.T) {
	Convey("Given an index", t, func() {
		l := LinkFor(3)
		So(l.Href, ShouldEqual, "/notes/3")
		So(l.Label, ShouldEqual, "Note 3")
	})
}
