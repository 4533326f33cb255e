package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/alorle/ace-launcher/internal/channel"
	"github.com/alorle/ace-launcher/internal/icon"
	"github.com/alorle/ace-launcher/internal/playlist"
	"github.com/alorle/ace-launcher/internal/settings"
	"github.com/alorle/ace-launcher/internal/source"
)

const samplePlaylist = "#EXTM3U\n" +
	"#EXTINF:-1,DAZN F1\n" +
	"acestream://aaaa1111\n" +
	"#EXTINF:-1,Movistar Liga\n" +
	"http://127.0.0.1:6878/ace/getstream?id=bbbb2222\n"

type channelRecord struct {
	Name     string
	StreamID string
	IconRef  string
}

func records(channels []channel.Channel) []channelRecord {
	out := make([]channelRecord, 0, len(channels))
	for _, ch := range channels {
		out = append(out, channelRecord{Name: ch.Name(), StreamID: ch.StreamID(), IconRef: ch.IconRef()})
	}
	return out
}

func testIcons() *icon.Table {
	return icon.NewTable([]icon.Mapping{
		{Keywords: []string{"dazn"}, IconRef: "dazn.png"},
		{Keywords: []string{"default"}, IconRef: "generic.png"},
	})
}

func TestCatalogService_Build(t *testing.T) {
	t.Run("parses playlist and resolves icons", func(t *testing.T) {
		fetcher := &mockContentFetcher{
			fetchFunc: func(ctx context.Context, location string) (string, error) {
				if location != "http://lists.example/a.m3u" {
					t.Errorf("unexpected location %q", location)
				}
				return samplePlaylist, nil
			},
		}
		service := NewCatalogService(fetcher, testIcons(), newMockSettingsStore(nil), &mockSourceRepository{}, newTestLogger())

		got, err := service.Build(context.Background(), "http://lists.example/a.m3u")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		want := []channelRecord{
			{Name: "DAZN F1", StreamID: "aaaa1111", IconRef: "dazn.png"},
			{Name: "Movistar Liga", StreamID: "bbbb2222", IconRef: "generic.png"},
		}
		if diff := cmp.Diff(want, records(got)); diff != "" {
			t.Errorf("channels mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty location returns no source selected", func(t *testing.T) {
		fetcher := &mockContentFetcher{
			fetchFunc: func(ctx context.Context, location string) (string, error) {
				t.Error("fetcher should not be called")
				return "", nil
			},
		}
		service := NewCatalogService(fetcher, nil, newMockSettingsStore(nil), &mockSourceRepository{}, newTestLogger())

		_, err := service.Build(context.Background(), "")
		if !errors.Is(err, ErrNoSourceSelected) {
			t.Errorf("expected ErrNoSourceSelected, got %v", err)
		}
	})

	t.Run("fetch failure is wrapped as catalog fetch error", func(t *testing.T) {
		fetchErr := &playlist.FetchError{Kind: playlist.KindRemoteFetchFailed, Location: "http://x", Message: "404 Not Found"}
		fetcher := &mockContentFetcher{
			fetchFunc: func(ctx context.Context, location string) (string, error) {
				return "", fetchErr
			},
		}
		service := NewCatalogService(fetcher, nil, newMockSettingsStore(nil), &mockSourceRepository{}, newTestLogger())

		_, err := service.Build(context.Background(), "http://x")
		if !errors.Is(err, &CatalogError{Kind: CatalogFetchFailed}) {
			t.Fatalf("expected catalog fetch error, got %v", err)
		}
		if errors.Is(err, ErrNoSourceSelected) {
			t.Error("fetch failure must not match ErrNoSourceSelected")
		}

		var got *playlist.FetchError
		if !errors.As(err, &got) {
			t.Fatalf("expected error to unwrap to *playlist.FetchError, got %v", err)
		}
		if got.Kind != playlist.KindRemoteFetchFailed {
			t.Errorf("expected kind %q, got %q", playlist.KindRemoteFetchFailed, got.Kind)
		}
	})

	t.Run("playlist without channels is an empty success", func(t *testing.T) {
		fetcher := &mockContentFetcher{
			fetchFunc: func(ctx context.Context, location string) (string, error) {
				return "#EXTM3U\n#EXTINF:-1,Orphan\n", nil
			},
		}
		service := NewCatalogService(fetcher, nil, newMockSettingsStore(nil), &mockSourceRepository{}, newTestLogger())

		got, err := service.Build(context.Background(), "file:///tmp/list.m3u")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no channels, got %d", len(got))
		}
	})

	t.Run("concurrent builds of one location share a fetch", func(t *testing.T) {
		var calls atomic.Int32
		release := make(chan struct{})
		fetcher := &mockContentFetcher{
			fetchFunc: func(ctx context.Context, location string) (string, error) {
				calls.Add(1)
				<-release
				return samplePlaylist, nil
			},
		}
		service := NewCatalogService(fetcher, nil, newMockSettingsStore(nil), &mockSourceRepository{}, newTestLogger())

		var wg sync.WaitGroup
		results := make([][]channel.Channel, 2)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = service.Build(context.Background(), "http://shared")
			}(i)
		}

		for calls.Load() == 0 {
			time.Sleep(time.Millisecond)
		}
		close(release)
		wg.Wait()

		if n := calls.Load(); n < 1 || n > 2 {
			t.Errorf("expected one or two fetches, got %d", n)
		}
		for i, got := range results {
			if len(got) != 2 {
				t.Errorf("result %d: expected 2 channels, got %d", i, len(got))
			}
		}
	})
}

func TestCatalogService_Reload(t *testing.T) {
	t.Run("builds selected source and stores snapshot", func(t *testing.T) {
		store := newMockSettingsStore(map[string]string{settings.KeySelectedSource: "http://b"})
		fetcher := &mockContentFetcher{
			fetchFunc: func(ctx context.Context, location string) (string, error) {
				if location != "http://b" {
					t.Errorf("expected selected location, got %q", location)
				}
				return samplePlaylist, nil
			},
		}
		service := NewCatalogService(fetcher, nil, store, &mockSourceRepository{}, newTestLogger())

		if _, err := service.Reload(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		current := service.Current()
		if current.Location != "http://b" {
			t.Errorf("expected location http://b, got %q", current.Location)
		}
		if current.Err != nil {
			t.Errorf("expected no catalog error, got %v", current.Err)
		}
		if len(current.Channels) != 2 {
			t.Errorf("expected 2 channels, got %d", len(current.Channels))
		}
	})

	t.Run("cancelled caller does not replace snapshot", func(t *testing.T) {
		store := newMockSettingsStore(map[string]string{settings.KeySelectedSource: "http://b"})
		fetcher := &mockContentFetcher{
			fetchFunc: func(ctx context.Context, location string) (string, error) {
				if err := ctx.Err(); err != nil {
					return "", &playlist.FetchError{Kind: playlist.KindRemoteFetchFailed, Location: location, Message: err.Error(), Err: err}
				}
				return samplePlaylist, nil
			},
		}
		service := NewCatalogService(fetcher, nil, store, &mockSourceRepository{}, newTestLogger())

		if _, err := service.Reload(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := service.Reload(ctx); err != nil {
			t.Fatalf("expected cancelled reload to complete, got %v", err)
		}

		current := service.Current()
		if current.Err != nil {
			t.Errorf("expected no catalog error, got %v", current.Err)
		}
		if len(current.Channels) != 2 {
			t.Errorf("expected 2 channels, got %d", len(current.Channels))
		}
	})

	t.Run("defaults to first source when selection never stored", func(t *testing.T) {
		sources := &mockSourceRepository{sources: []source.Source{
			mustSource("A", "http://a", false),
			mustSource("B", "http://b", false),
		}}
		var fetched string
		fetcher := &mockContentFetcher{
			fetchFunc: func(ctx context.Context, location string) (string, error) {
				fetched = location
				return "", nil
			},
		}
		service := NewCatalogService(fetcher, nil, newMockSettingsStore(nil), sources, newTestLogger())

		if _, err := service.Reload(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if fetched != "http://a" {
			t.Errorf("expected first source to be fetched, got %q", fetched)
		}
	})

	t.Run("stored empty selection reports no source selected", func(t *testing.T) {
		store := newMockSettingsStore(map[string]string{settings.KeySelectedSource: ""})
		sources := &mockSourceRepository{sources: []source.Source{mustSource("A", "http://a", false)}}
		service := NewCatalogService(&mockContentFetcher{}, nil, store, sources, newTestLogger())

		_, err := service.Reload(context.Background())
		if !errors.Is(err, ErrNoSourceSelected) {
			t.Fatalf("expected ErrNoSourceSelected, got %v", err)
		}

		current := service.Current()
		if !errors.Is(current.Err, ErrNoSourceSelected) {
			t.Errorf("expected snapshot error ErrNoSourceSelected, got %v", current.Err)
		}
		if current.Channels == nil || len(current.Channels) != 0 {
			t.Errorf("expected empty non-nil channels, got %v", current.Channels)
		}
	})

	t.Run("settings read failure leaves snapshot untouched", func(t *testing.T) {
		store := newMockSettingsStore(nil)
		store.getFunc = func(ctx context.Context, key string) (string, bool, error) {
			return "", false, errors.New("db closed")
		}
		service := NewCatalogService(&mockContentFetcher{}, nil, store, &mockSourceRepository{}, newTestLogger())

		if _, err := service.Reload(context.Background()); err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(service.Current().Err, ErrNoSourceSelected) {
			t.Errorf("expected initial snapshot to remain, got %v", service.Current().Err)
		}
	})
}

func TestCatalogService_Current(t *testing.T) {
	t.Run("initial catalog reports no source selected", func(t *testing.T) {
		service := NewCatalogService(&mockContentFetcher{}, nil, newMockSettingsStore(nil), &mockSourceRepository{}, newTestLogger())

		current := service.Current()
		if !errors.Is(current.Err, ErrNoSourceSelected) {
			t.Errorf("expected ErrNoSourceSelected, got %v", current.Err)
		}
		if len(current.Channels) != 0 {
			t.Errorf("expected no channels, got %d", len(current.Channels))
		}
	})

	t.Run("returned channels are a copy", func(t *testing.T) {
		store := newMockSettingsStore(map[string]string{settings.KeySelectedSource: "http://a"})
		fetcher := &mockContentFetcher{
			fetchFunc: func(ctx context.Context, location string) (string, error) {
				return samplePlaylist, nil
			},
		}
		service := NewCatalogService(fetcher, nil, store, &mockSourceRepository{}, newTestLogger())
		if _, err := service.Reload(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		first := service.Current()
		first.Channels[0] = channel.Channel{}

		second := service.Current()
		if second.Channels[0].Name() != "DAZN F1" {
			t.Errorf("snapshot was mutated through a returned slice: %q", second.Channels[0].Name())
		}
	})
}
