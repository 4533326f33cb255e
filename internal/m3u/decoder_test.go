package m3u_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alorle/ace-launcher/internal/channel"
	"github.com/alorle/ace-launcher/internal/icon"
	"github.com/alorle/ace-launcher/internal/m3u"
)

type record struct {
	Name     string
	StreamID string
	IconRef  string
}

func toRecords(channels []channel.Channel) []record {
	records := make([]record, len(channels))
	for i, ch := range channels {
		records[i] = record{Name: ch.Name(), StreamID: ch.StreamID(), IconRef: ch.IconRef()}
	}
	return records
}

func testTable() *icon.Table {
	return icon.NewTable([]icon.Mapping{
		{Keywords: []string{"sport", "espn"}, IconRef: "icons/sports.png"},
		{Keywords: []string{"default"}, IconRef: "icons/default.png"},
	})
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []record
	}{
		{
			name:  "acestream scheme line",
			input: "#EXTINF:-1,ESPN HD\nacestream://abc123\n",
			want:  []record{{Name: "ESPN HD", StreamID: "abc123", IconRef: "icons/sports.png"}},
		},
		{
			name:  "http locator with id parameter",
			input: "#EXTINF:-1,Random Channel\nhttp://host/ace/getstream?id=deadBEEF\n",
			want:  []record{{Name: "Random Channel", StreamID: "deadBEEF", IconRef: "icons/default.png"}},
		},
		{
			name:  "http locator with embedded acestream scheme",
			input: "#EXTINF:-1,Embedded\nhttp://proxy/play?u=acestream://c0ffee&x=1\n",
			want:  []record{{Name: "Embedded", StreamID: "c0ffee", IconRef: "icons/default.png"}},
		},
		{
			name:  "earliest marker in the line wins",
			input: "#EXTINF:-1,Both\nhttp://proxy/?id=aaa111&u=acestream://bbb222\n",
			want:  []record{{Name: "Both", StreamID: "aaa111", IconRef: "icons/default.png"}},
		},
		{
			name:  "marker without hex token is skipped for a later one",
			input: "#EXTINF:-1,Later\nhttp://host/?id=zzz&id=abc\n",
			want:  []record{{Name: "Later", StreamID: "abc", IconRef: "icons/default.png"}},
		},
		{
			name:  "orphan name is dropped",
			input: "#EXTINF:-1,Orphan Name\n",
			want:  []record{},
		},
		{
			name:  "name after the last comma",
			input: "#EXTINF:-1 tvg-name=\"a,b\",Sports, Extra\nacestream://123\n",
			want:  []record{{Name: "Extra", StreamID: "123", IconRef: "icons/default.png"}},
		},
		{
			name:  "extinf without comma has no name",
			input: "#EXTINF:-1 no comma\nacestream://123\n",
			want:  []record{},
		},
		{
			name:  "CRLF and blank lines",
			input: "#EXTM3U\r\n\r\n#EXTINF:-1,One\r\nacestream://111\r\n\r\n#EXTINF:-1,Two\r\nacestream://222\r\n",
			want: []record{
				{Name: "One", StreamID: "111", IconRef: "icons/default.png"},
				{Name: "Two", StreamID: "222", IconRef: "icons/default.png"},
			},
		},
		{
			name:  "id before name completes on the name line",
			input: "acestream://999\n#EXTINF:-1,Late Name\n",
			want:  []record{{Name: "Late Name", StreamID: "999", IconRef: "icons/default.png"}},
		},
		{
			name:  "later id overwrites pending id",
			input: "acestream://111\nacestream://222\n#EXTINF:-1,Chan\n",
			want:  []record{{Name: "Chan", StreamID: "222", IconRef: "icons/default.png"}},
		},
		{
			name:  "http line without markers leaves slots untouched",
			input: "#EXTINF:-1,Kept\nhttp://host/logo.png\nacestream://abc\n",
			want:  []record{{Name: "Kept", StreamID: "abc", IconRef: "icons/default.png"}},
		},
		{
			name:  "uppercase HTTP is not a locator",
			input: "#EXTINF:-1,Upper\nHTTP://host/?id=abc\n",
			want:  []record{},
		},
		{
			name:  "duplicates are preserved",
			input: "#EXTINF:-1,Same\nacestream://1\n#EXTINF:-1,Same\nacestream://1\n",
			want: []record{
				{Name: "Same", StreamID: "1", IconRef: "icons/default.png"},
				{Name: "Same", StreamID: "1", IconRef: "icons/default.png"},
			},
		},
		{
			name:  "empty acestream remainder does not complete",
			input: "#EXTINF:-1,Empty\nacestream://   \n",
			want:  []record{},
		},
		{
			name:  "empty input",
			input: "",
			want:  []record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toRecords(m3u.Decode(tt.input, testTable()))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_Idempotent(t *testing.T) {
	input := "#EXTM3U\n#EXTINF:-1,ESPN HD\nacestream://abc123\n#EXTINF:-1,Orphan\n#EXTINF:-1,News\nhttp://h/?id=ff00\n"
	table := testTable()

	first := toRecords(m3u.Decode(input, table))
	second := toRecords(m3u.Decode(input, table))

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Decode() not idempotent (-first +second):\n%s", diff)
	}
}

func TestDecode_EveryChannelHasNameAndID(t *testing.T) {
	inputs := []string{
		"#EXTINF:-1,\nacestream://abc\n",
		"#EXTINF\nacestream://abc\nhttp://x\n#EXTINF:-1,A\n",
		"acestream://\n#EXTINF:-1,B\nhttp://h/?id=\n",
		",,,\n#EXTINF:,,\nacestream://1\n",
	}

	for _, input := range inputs {
		for _, ch := range m3u.Decode(input, nil) {
			if ch.Name() == "" || ch.StreamID() == "" {
				t.Errorf("Decode(%q) emitted incomplete channel %+v", input, ch)
			}
		}
	}
}

func TestDecode_NilResolver(t *testing.T) {
	got := m3u.Decode("#EXTINF:-1,ESPN\nacestream://abc\n", nil)
	if len(got) != 1 {
		t.Fatalf("Decode() returned %d channels, want 1", len(got))
	}
	if got[0].IconRef() != "" {
		t.Errorf("IconRef() = %q, want empty", got[0].IconRef())
	}
}
