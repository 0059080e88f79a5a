package note

import (
	"iter"
	"strconv"
)

// IndexSize is the number of links on the notes index page.
const IndexSize = 15

// IndexPath is where the notes index page is served.
const IndexPath = "/notes"

// Link is one entry of the notes index.
type Link struct {
	Index int
	Label string
	Href  string
}

// LinkFor builds the link for a single note index.
func LinkFor(index int) Link {
	id := strconv.Itoa(index)
	return Link{
		Index: index,
		Label: "Note " + id,
		Href:  IndexPath + "/" + id,
	}
}

// IndexLinks yields the index links 0..IndexSize-1 in ascending order.
// The sequence is lazy and can be ranged over any number of times.
func IndexLinks() iter.Seq[Link] {
	return func(yield func(Link) bool) {
		for i := range IndexSize {
			if !yield(LinkFor(i)) {
				return
			}
		}
	}
}
