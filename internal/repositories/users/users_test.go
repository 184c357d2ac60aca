package users

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	t.Run("bound character", func(t *testing.T) {
		id, err := repo.GetCharacter(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, id)

		require.NoError(t, repo.BindCharacter(ctx, "user-1", "actor-1"))
		id, err = repo.GetCharacter(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "actor-1", id)

		require.NoError(t, repo.BindCharacter(ctx, "user-1", ""))
		id, _ = repo.GetCharacter(ctx, "user-1")
		assert.Empty(t, id)

		assert.Error(t, repo.BindCharacter(ctx, "", "actor-1"))
	})

	t.Run("selection", func(t *testing.T) {
		require.NoError(t, repo.Select(ctx, "user-1", []string{"b", "a", "b", ""}))
		ids, err := repo.GetSelection(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, ids)

		ids[0] = "mutated"
		again, _ := repo.GetSelection(ctx, "user-1")
		assert.Equal(t, "b", again[0])

		require.NoError(t, repo.ClearSelection(ctx, "user-1"))
		ids, _ = repo.GetSelection(ctx, "user-1")
		assert.Empty(t, ids)
	})
}

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
	ctx        context.Context
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: s.mockClient})
	s.ctx = context.Background()
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestBindCharacter() {
	s.mock.ExpectSet("user:u1:character", "actor-1", 0).SetVal("OK")
	s.NoError(s.repo.BindCharacter(s.ctx, "u1", "actor-1"))

	s.mock.ExpectDel("user:u1:character").SetVal(1)
	s.NoError(s.repo.BindCharacter(s.ctx, "u1", ""))

	s.mock.ExpectSet("user:u1:character", "actor-1", 0).SetErr(errors.New("redis error"))
	s.Error(s.repo.BindCharacter(s.ctx, "u1", "actor-1"))
}

func (s *RedisRepoTestSuite) TestGetCharacter() {
	s.mock.ExpectGet("user:u1:character").SetVal("actor-1")
	id, err := s.repo.GetCharacter(s.ctx, "u1")
	s.NoError(err)
	s.Equal("actor-1", id)

	s.mock.ExpectGet("user:u2:character").RedisNil()
	id, err = s.repo.GetCharacter(s.ctx, "u2")
	s.NoError(err)
	s.Empty(id)
}

func (s *RedisRepoTestSuite) TestSelect() {
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("user:u1:selection").SetVal(1)
	s.mock.ExpectRPush("user:u1:selection", "a", "b").SetVal(2)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Select(s.ctx, "u1", []string{"a", "b", "a"}))
}

func (s *RedisRepoTestSuite) TestGetAndClearSelection() {
	s.mock.ExpectLRange("user:u1:selection", 0, -1).SetVal([]string{"a", "b"})
	ids, err := s.repo.GetSelection(s.ctx, "u1")
	s.NoError(err)
	s.Equal([]string{"a", "b"}, ids)

	s.mock.ExpectDel("user:u1:selection").SetVal(1)
	s.NoError(s.repo.ClearSelection(s.ctx, "u1"))
}
