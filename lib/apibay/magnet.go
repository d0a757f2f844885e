package apibay

import (
	"net/url"
)

// Magnet builds a magnet link for the torrent with the site's trackers attached.
func (t PartialTorrent) Magnet() string {
	query := url.Values{}
	query.Set("dn", t.Name)
	for _, tracker := range Trackers {
		query.Add("tr", tracker)
	}
	// xt is written by hand, url.Values would escape its colons
	return "magnet:?xt=urn:btih:" + t.InfoHash + "&" + query.Encode()
}
