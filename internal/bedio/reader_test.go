package bedio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noamteyssier/coitrees/internal/bedio"
)

func TestReadBasic(t *testing.T) {
	input := "chr1\t0\t10\n" +
		"chr1\t5\t15\n" +
		"chr2\t100\t200\n"

	records, err := bedio.Read(strings.NewReader(input), "test.bed")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, bedio.Record{Chrom: "chr1", First: 0, Last: 9}, records[0])
	assert.Equal(t, bedio.Record{Chrom: "chr1", First: 5, Last: 14}, records[1])
	assert.Equal(t, bedio.Record{Chrom: "chr2", First: 100, Last: 199}, records[2])
}

func TestReadIgnoresExtraColumns(t *testing.T) {
	input := "chr1\t0\t10\tname\t0\t+\n"
	records, err := bedio.Read(strings.NewReader(input), "test.bed")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "chr1", records[0].Chrom)
}

func TestReadTooFewFields(t *testing.T) {
	input := "chr1\t0\n"
	_, err := bedio.Read(strings.NewReader(input), "test.bed")
	require.Error(t, err)

	var perr *bedio.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
}

func TestReadNonNumericField(t *testing.T) {
	input := "chr1\tstart\t10\n"
	_, err := bedio.Read(strings.NewReader(input), "test.bed")
	require.Error(t, err)

	var perr *bedio.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestReadEmptyInput(t *testing.T) {
	records, err := bedio.Read(strings.NewReader(""), "empty.bed")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGroupByChromosome(t *testing.T) {
	records := []bedio.Record{
		{Chrom: "chr1", First: 0, Last: 9},
		{Chrom: "chr2", First: 5, Last: 14},
		{Chrom: "chr1", First: 20, Last: 29},
	}

	groups := bedio.Group(records, func(i int, r bedio.Record) int { return i })

	require.Len(t, groups, 2)
	require.Len(t, groups["chr1"], 2)
	require.Len(t, groups["chr2"], 1)

	assert.Equal(t, int32(0), groups["chr1"][0].First)
	assert.Equal(t, 0, groups["chr1"][0].Metadata)
	assert.Equal(t, int32(20), groups["chr1"][1].First)
	assert.Equal(t, 2, groups["chr1"][1].Metadata)
}

func TestBuildTreesOnePerChromosome(t *testing.T) {
	records := []bedio.Record{
		{Chrom: "chr1", First: 0, Last: 9},
		{Chrom: "chr1", First: 5, Last: 14},
		{Chrom: "chr2", First: 100, Last: 199},
	}

	trees := bedio.BuildTrees(records, func(i int, r bedio.Record) int { return i })

	require.Len(t, trees, 2)
	assert.Equal(t, 2, trees["chr1"].Len())
	assert.Equal(t, 1, trees["chr2"].Len())
	assert.Equal(t, 2, trees["chr1"].QueryCount(0, 20))
	assert.Equal(t, 0, trees["chr1"].QueryCount(1000, 2000))
}
