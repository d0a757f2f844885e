package apibay

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// PartialTorrent is what listing endpoints (search, top 100) return for each torrent.
type PartialTorrent struct {
	ID       uint64
	Name     string
	InfoHash string
	Leechers uint64
	Seeders  uint64
	NumFiles uint64
	Size     uint64
	Username string
	Added    time.Time
	Status   UserStatus
	Category Category
	// IMDB is empty when the torrent isn't linked to a title.
	IMDB string
}

// Torrent is the full detail of a single torrent.
type Torrent struct {
	PartialTorrent
	Descr        string
	Language     *int
	TextLanguage *int
}

// TorrentFile describes one file in a torrent.
type TorrentFile struct {
	Name string
	Size uint64
}

type UserStatus string

const (
	StatusMember    UserStatus = "member"
	StatusTrusted   UserStatus = "trusted"
	StatusHelper    UserStatus = "helper"
	StatusVip       UserStatus = "vip"
	StatusModerator UserStatus = "moderator"
	StatusSuperMod  UserStatus = "supermod"
	StatusAdmin     UserStatus = "admin"
)

func (s *UserStatus) UnmarshalJSON(data []byte) error {
	var raw string
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("user status: %w", err)
	}
	switch status := UserStatus(raw); status {
	case StatusMember, StatusTrusted, StatusHelper, StatusVip,
		StatusModerator, StatusSuperMod, StatusAdmin:
		*s = status
		return nil
	}
	return fmt.Errorf("user status: unknown value %q", raw)
}

// flexUint accepts both 12 and "12", the api is inconsistent about which it sends.
type flexUint uint64

func (f *flexUint) UnmarshalJSON(data []byte) error {
	var number json.Number
	err := json.Unmarshal(data, &number)
	if err != nil {
		return fmt.Errorf("expected a u64 or a string: %w", err)
	}
	value, err := strconv.ParseUint(number.String(), 10, 64)
	if err != nil {
		return fmt.Errorf("expected a u64 or a string: %w", err)
	}
	*f = flexUint(value)
	return nil
}

// flexTimestamp is a number of seconds since the unix epoch, as a number or a string.
type flexTimestamp time.Time

func (f *flexTimestamp) UnmarshalJSON(data []byte) error {
	var number json.Number
	err := json.Unmarshal(data, &number)
	if err != nil {
		return fmt.Errorf("expected a timestamp in seconds: %w", err)
	}
	secs, err := number.Int64()
	if err != nil {
		return fmt.Errorf("expected a timestamp in seconds: %w", err)
	}
	*f = flexTimestamp(time.Unix(secs, 0).UTC())
	return nil
}

// unitArray unwraps a JSON array holding exactly one element.
func unitArray(data []byte, out any) error {
	var arr []json.RawMessage
	err := json.Unmarshal(data, &arr)
	if err != nil {
		return fmt.Errorf("expected an array: %w", err)
	}
	if len(arr) != 1 {
		return fmt.Errorf("expected an array of length 1, got %d", len(arr))
	}
	return json.Unmarshal(arr[0], out)
}

type partialTorrentJson struct {
	ID       flexUint      `json:"id"`
	Name     string        `json:"name"`
	InfoHash string        `json:"info_hash"`
	Leechers flexUint      `json:"leechers"`
	Seeders  flexUint      `json:"seeders"`
	NumFiles flexUint      `json:"num_files"`
	Size     flexUint      `json:"size"`
	Username string        `json:"username"`
	Added    flexTimestamp `json:"added"`
	Status   UserStatus    `json:"status"`
	Category Category      `json:"category"`
	IMDB     *string       `json:"imdb"`
}

func (p partialTorrentJson) torrent() PartialTorrent {
	out := PartialTorrent{
		ID:       uint64(p.ID),
		Name:     p.Name,
		InfoHash: p.InfoHash,
		Leechers: uint64(p.Leechers),
		Seeders:  uint64(p.Seeders),
		NumFiles: uint64(p.NumFiles),
		Size:     uint64(p.Size),
		Username: p.Username,
		Added:    time.Time(p.Added),
		Status:   p.Status,
		Category: p.Category,
	}
	if p.IMDB != nil {
		out.IMDB = *p.IMDB
	}
	return out
}

func (t *PartialTorrent) UnmarshalJSON(data []byte) error {
	var raw partialTorrentJson
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	*t = raw.torrent()
	return nil
}

func (t *Torrent) UnmarshalJSON(data []byte) error {
	var raw struct {
		partialTorrentJson
		Descr        string `json:"descr"`
		Language     *int   `json:"language"`
		TextLanguage *int   `json:"textlanguage"`
	}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	*t = Torrent{
		PartialTorrent: raw.partialTorrentJson.torrent(),
		Descr:          raw.Descr,
		Language:       raw.Language,
		TextLanguage:   raw.TextLanguage,
	}
	return nil
}

func (f *TorrentFile) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name json.RawMessage `json:"name"`
		Size json.RawMessage `json:"size"`
	}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	var name string
	err = unitArray(raw.Name, &name)
	if err != nil {
		return fmt.Errorf("file name: %w", err)
	}
	var size flexUint
	err = unitArray(raw.Size, &size)
	if err != nil {
		return fmt.Errorf("file size: %w", err)
	}

	*f = TorrentFile{Name: name, Size: uint64(size)}
	return nil
}
