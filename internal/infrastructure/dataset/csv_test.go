package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"launchdash/internal/domain"
	"launchdash/internal/domain/entity"
	"launchdash/internal/domain/value"
	"launchdash/internal/infrastructure/dataset"
	"launchdash/pkg/errcodes"
)

const header = ",Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category\n"

func TestReadLaunches(t *testing.T) {
	rq := require.New(t)

	input := header +
		"0,1,CCAFS LC-40,0,0.0,F9 v1.0  B0003,v1.0\n" +
		"1,2,CCAFS LC-40,1,525.0,F9 v1.0  B0005,v1.0\n" +
		"2,3,VAFB SLC-4E,1,9600.0,F9 FT B1029.1,FT\n"

	launches, err := dataset.ReadLaunches(strings.NewReader(input))
	rq.NoError(err)

	rq.Equal([]entity.Launch{
		{FlightNumber: 1, Site: "CCAFS LC-40", PayloadMassKg: 0, BoosterVersion: "F9 v1.0  B0003", BoosterVersionCategory: "v1.0", Class: value.OutcomeFailure},
		{FlightNumber: 2, Site: "CCAFS LC-40", PayloadMassKg: 525, BoosterVersion: "F9 v1.0  B0005", BoosterVersionCategory: "v1.0", Class: value.OutcomeSuccess},
		{FlightNumber: 3, Site: "VAFB SLC-4E", PayloadMassKg: 9600, BoosterVersion: "F9 FT B1029.1", BoosterVersionCategory: "FT", Class: value.OutcomeSuccess},
	}, launches)
}

func TestReadLaunchesMinimalColumnsAnyOrder(t *testing.T) {
	rq := require.New(t)

	input := "class,Booster Version Category,Payload Mass (kg),Launch Site\n" +
		"1,B5,5384,CCAFS SLC-40\n"

	launches, err := dataset.ReadLaunches(strings.NewReader(input))
	rq.NoError(err)
	rq.Len(launches, 1)
	rq.Equal(value.Site("CCAFS SLC-40"), launches[0].Site)
	rq.Zero(launches[0].FlightNumber)
	rq.Equal("B5", launches[0].BoosterVersionCategory)
}

func TestReadLaunchesErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		err   string
	}{
		{
			name:  "Empty input",
			input: "",
			err:   "read header",
		},
		{
			name:  "Missing column",
			input: "Launch Site,class,Booster Version Category\nCCAFS LC-40,1,FT\n",
			err:   `missing column "Payload Mass (kg)"`,
		},
		{
			name:  "No rows",
			input: header,
			err:   "launch file has no rows",
		},
		{
			name:  "Bad payload",
			input: header + "0,1,CCAFS LC-40,1,heavy,F9,FT\n",
			err:   `line 2: "Payload Mass (kg)"`,
		},
		{
			name:  "Negative payload",
			input: header + "0,1,CCAFS LC-40,1,-5,F9,FT\n",
			err:   "invalid mass -5",
		},
		{
			name:  "Class out of range",
			input: header + "0,1,CCAFS LC-40,1,100,F9,FT\n0,2,CCAFS LC-40,2,100,F9,FT\n",
			err:   "line 3",
		},
		{
			name:  "Short row",
			input: header + "0,1,CCAFS LC-40,1\n",
			err:   "header/val mismatch (7/4)",
		},
		{
			name:  "Empty site",
			input: header + "0,1,,1,100,F9,FT\n",
			err:   `empty "Launch Site"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := dataset.ReadLaunches(strings.NewReader(tc.input))
			rq.ErrorContains(err, tc.err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(errcodes.InvalidDataset, code)
		})
	}
}
