package datasetservice

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Built-in demonstration tables covering October 2022 activity for seven players.
const (
	sampleDeposits = `User Id,Amount,Datetime
101,5000,01-10-2022 10:00
101,3000,05-10-2022 15:30
102,7000,02-10-2022 11:15
103,2000,03-10-2022 09:45
104,10000,10-10-2022 14:00
105,4000,15-10-2022 16:30
101,6000,20-10-2022 10:45
106,8000,25-10-2022 13:15
102,3000,28-10-2022 17:30
107,5000,30-10-2022 18:00
`

	sampleWithdrawals = `User Id,Amount,Datetime
101,2000,08-10-2022 11:00
102,3000,12-10-2022 14:30
103,1000,14-10-2022 10:15
104,5000,18-10-2022 16:45
105,2000,22-10-2022 12:00
101,1000,25-10-2022 09:30
106,4000,27-10-2022 15:15
107,2000,29-10-2022 17:00
`

	sampleGameplay = `User Id,Games Played,Datetime
101,15,01-10-2022 10:30
101,20,02-10-2022 11:00
102,30,03-10-2022 09:30
103,10,04-10-2022 14:00
104,25,05-10-2022 16:30
105,18,06-10-2022 12:45
106,22,07-10-2022 10:15
107,12,08-10-2022 15:30
101,25,09-10-2022 11:00
102,35,10-10-2022 14:30
103,15,11-10-2022 09:00
104,30,12-10-2022 16:00
105,20,13-10-2022 13:45
106,28,14-10-2022 10:30
107,18,15-10-2022 17:00
`
)

// LoadSample imports the three built-in demo tables, replacing whatever is
// currently stored. The tables are independent, so they normalize concurrently.
func (s *Service) LoadSample(ctx context.Context) ([]ImportSummary, error) {
	sources := map[domain.TableKind]string{
		domain.TableDeposits:    sampleDeposits,
		domain.TableWithdrawals: sampleWithdrawals,
		domain.TableGameplay:    sampleGameplay,
	}

	var mu sync.Mutex
	summaries := make([]ImportSummary, 0, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for kind, data := range sources {
		kind, data := kind, data
		g.Go(func() error {
			summary, err := s.ImportCSV(ctx, kind, strings.NewReader(data))
			if err != nil {
				return err
			}
			mu.Lock()
			summaries = append(summaries, *summary)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Kind < summaries[j].Kind })
	return summaries, nil
}
