package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tenant-user-api/internal/domain"
)

func users(n int) []domain.User {
	out := make([]domain.User, n)
	return out
}

func TestPaginatorSinglePage(t *testing.T) {
	info := newPaginatorInfo(&domain.Page{Items: users(3), Total: 3, Page: 1, PerPage: 10})

	assert.Equal(t, 3, info.Count)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.LastPage)
	assert.EqualValues(t, 3, info.Total)
	assert.False(t, info.HasMorePages)
	require.NotNil(t, info.FirstItem)
	require.NotNil(t, info.LastItem)
	assert.Equal(t, 1, *info.FirstItem)
	assert.Equal(t, 3, *info.LastItem)
}

func TestPaginatorMiddlePage(t *testing.T) {
	info := newPaginatorInfo(&domain.Page{Items: users(10), Total: 25, Page: 2, PerPage: 10})

	assert.Equal(t, 10, info.Count)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.LastPage)
	assert.True(t, info.HasMorePages)
	assert.Equal(t, 11, *info.FirstItem)
	assert.Equal(t, 20, *info.LastItem)
}

func TestPaginatorLastPartialPage(t *testing.T) {
	info := newPaginatorInfo(&domain.Page{Items: users(5), Total: 25, Page: 3, PerPage: 10})

	assert.Equal(t, 5, info.Count)
	assert.Equal(t, 3, info.LastPage)
	assert.False(t, info.HasMorePages)
	assert.Equal(t, 21, *info.FirstItem)
	assert.Equal(t, 25, *info.LastItem)
}

func TestPaginatorEmptyResult(t *testing.T) {
	info := newPaginatorInfo(&domain.Page{Total: 0, Page: 1, PerPage: 10})

	assert.Equal(t, 0, info.Count)
	assert.Equal(t, 1, info.LastPage, "an empty result still has one page")
	assert.False(t, info.HasMorePages)
	assert.Nil(t, info.FirstItem)
	assert.Nil(t, info.LastItem)
}

func TestPaginatorInvariants(t *testing.T) {
	cases := []*domain.Page{
		{Items: users(10), Total: 100, Page: 1, PerPage: 10},
		{Items: users(10), Total: 100, Page: 10, PerPage: 10},
		{Items: users(1), Total: 1, Page: 1, PerPage: 10},
		{Items: users(0), Total: 30, Page: 99, PerPage: 10},
	}
	for _, p := range cases {
		info := newPaginatorInfo(p)
		assert.Equal(t, info.CurrentPage < info.LastPage, info.HasMorePages)
		assert.GreaterOrEqual(t, info.Total, int64(info.Count))
	}
}
