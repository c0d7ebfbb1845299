package processor

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"

	"accesslogstats/internal/entity"
	"accesslogstats/internal/logcollector"
	"accesslogstats/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSource = "http://example.com/access.csv"

type mockLogCollector struct {
	logcollector.LogCollector
	mock.Mock
}

func (m *mockLogCollector) GetLogs(ctx context.Context, source *url.URL) (string, error) {
	args := m.Called(ctx, source)
	return args.String(0), args.Error(1)
}

type mockParser struct {
	parser.Parser
	mock.Mock
}

func (m *mockParser) ParseEntries(data io.Reader) ([]*entity.LogRow, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LogRow), args.Error(1)
}

func sourceURL(t *testing.T) *url.URL {
	u, err := url.Parse(testSource)
	require.NoError(t, err)
	return u
}

func TestProcessThreeRows(t *testing.T) {
	lc := new(mockLogCollector)
	source := sourceURL(t)

	logLines := `/images/banner.gif,7/16/1995 14:02:11,Mozilla/5.0 Chrome/80.0,200,4096
/index.html,bad timestamp,curl/7.68.0,200,1024
/about.html,7/16/1995 not-a-time,Wget/1.20,404,0
`
	lc.On("GetLogs", mock.Anything, source).Return(logLines, nil)

	p := NewProcessor(lc, parser.NewAccessLogParser())
	stats, err := p.Process(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalHits)
	assert.Equal(t, 1, stats.ImageHits)
	assert.Equal(t, []entity.CounterItem{{Key: "Chrome", Count: 1}}, stats.Browsers.Items())
	assert.Equal(t, entity.HourlyHits{14: 1}, stats.Hourly)

	lc.AssertExpectations(t)
}

func TestProcessCollectorError(t *testing.T) {
	lc := new(mockLogCollector)
	pr := new(mockParser)
	source := sourceURL(t)

	lc.On("GetLogs", mock.Anything, source).Return("", errors.New("no such host"))

	p := NewProcessor(lc, pr)
	stats, err := p.Process(context.Background(), source)
	assert.Nil(t, stats)
	assert.EqualError(t, err, "could not get logs: no such host")

	pr.AssertNotCalled(t, "ParseEntries", mock.Anything)
	lc.AssertExpectations(t)
}

func TestProcessParserError(t *testing.T) {
	lc := new(mockLogCollector)
	pr := new(mockParser)
	source := sourceURL(t)

	lc.On("GetLogs", mock.Anything, source).Return("data", nil)
	pr.On("ParseEntries", mock.Anything).Return(nil, errors.New("broken"))

	p := NewProcessor(lc, pr)
	_, err := p.Process(context.Background(), source)
	assert.EqualError(t, err, "could not parse entries: broken")

	lc.AssertExpectations(t)
	pr.AssertExpectations(t)
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, 0, stats.TotalHits)
	assert.Equal(t, 0, stats.ImageHits)
	assert.Equal(t, 0, stats.Browsers.Len())
	assert.Empty(t, stats.Hourly)
}

func TestAggregateBrowserTieKeepsFirstSeen(t *testing.T) {
	var rows []*entity.LogRow
	for _, ua := range []string{"Firefox/1", "Chrome/1", "Chrome/2", "Firefox/2", "Chrome/3", "Firefox/3"} {
		rows = append(rows, entity.NewLogRow("/", "1/1/2000 10:00:00", ua, "200", "1"))
	}

	stats := Aggregate(rows)
	assert.Equal(t, 3, stats.Browsers.Get("Firefox"))
	assert.Equal(t, 3, stats.Browsers.Get("Chrome"))

	best, ok := stats.Browsers.MostCommon()
	assert.True(t, ok)
	assert.Equal(t, "Firefox", best.Key)
}

func TestAggregateMalformedTimestampStillCounted(t *testing.T) {
	stats := Aggregate([]*entity.LogRow{
		entity.NewLogRow("/img/logo.PNG", "not a date", "Mozilla/4.0 (compatible; MSIE 5.0)", "200", "1"),
	})

	assert.Equal(t, 1, stats.TotalHits)
	assert.Equal(t, 1, stats.ImageHits)
	assert.Equal(t, 1, stats.Browsers.Get("MSIE"))
	assert.Empty(t, stats.Hourly)
}

func TestAggregateInvariants(t *testing.T) {
	data := `/a.png,7/16/1995 0:12:59,Mozilla/4.0 (compatible; MSIE 5.0),200,1
/b.html,7/16/1995 1:00:00,Firefox,200,1
/c.JPG,garbage,Safari,200,1
/d.gif,7/16/1995 1:30:00,Chrome Safari,200,1
/e,7/16/1995 23:59:59,Lynx,200,1
/f.png,7/16/1995 23:00:00,Opera
"/g,h.png",7/17/1995 5:00:00,"Safari, Chrome",200,1
`
	rows, err := parser.NewAccessLogParser().ParseEntries(strings.NewReader(data))
	require.NoError(t, err)

	stats := Aggregate(rows)

	assert.Equal(t, 6, stats.TotalHits)
	assert.Equal(t, 4, stats.ImageHits)
	assert.Equal(t, 5, stats.Browsers.Total())
	assert.Equal(t, 2, stats.Browsers.Get("Safari"))
	assert.Equal(t, 5, stats.Hourly.Total())
	assert.Equal(t, entity.HourlyHits{0: 1, 1: 2, 5: 1, 23: 1}, stats.Hourly)

	assert.LessOrEqual(t, stats.ImageHits, stats.TotalHits)
	assert.LessOrEqual(t, stats.Hourly.Total(), stats.TotalHits)
	assert.LessOrEqual(t, stats.Browsers.Total(), stats.TotalHits)
}
