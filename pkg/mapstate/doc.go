// Package mapstate holds the live tile grid a crawl writes into: the
// flat tile buffer, the table of rooms committed so far, and the
// placement check (CanPlace) the crawler consults before ever touching
// the buffer.
package mapstate
