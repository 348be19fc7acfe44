package repository

import (
	"context"
	"testing"
	"time"

	"levantamiento_service/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewEventDynamoRepository_Create(t *testing.T) {
	f := &fakeDynamo{}
	repo := NewReviewEventDynamoRepository(f, "")
	e := entities.ReviewEvent{ID: "ev-1", SurveyID: "lev-1", Action: entities.ReviewActionApproveAll, ActorID: "u1", ActorRole: "reviewer", Date: time.Now().UTC()}

	got, err := repo.Create(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, e, got)
	assert.Equal(t, "review_events", aws.ToString(f.put.TableName))
	assert.NotContains(t, f.put.Item, "block")
	assert.NotContains(t, f.put.Item, "comments")
}

func TestReviewEventDynamoRepository_ListBySurveyID(t *testing.T) {
	base := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	comment := "sin firma"
	late, err := attributevalue.MarshalMap(toReviewEventItem(entities.ReviewEvent{ID: "ev-2", SurveyID: "lev-1", Action: entities.ReviewActionRejectBlock, Block: entities.BlockBudget, Comments: &comment, Date: base.Add(time.Hour)}))
	require.NoError(t, err)
	early, err := attributevalue.MarshalMap(toReviewEventItem(entities.ReviewEvent{ID: "ev-1", SurveyID: "lev-1", Action: entities.ReviewActionApproveBlock, Block: entities.BlockMaterials, Date: base}))
	require.NoError(t, err)

	f := &fakeDynamo{queryOut: &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{late, early}}}
	repo := NewReviewEventDynamoRepository(f, "eventos")

	got, err := repo.ListBySurveyID(context.Background(), "lev-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ev-1", got[0].ID)
	assert.Equal(t, "ev-2", got[1].ID)
	assert.Equal(t, comment, *got[1].Comments)
	assert.Equal(t, "survey_id-index", aws.ToString(f.query.IndexName))
	assert.Equal(t, "eventos", aws.ToString(f.query.TableName))
}
