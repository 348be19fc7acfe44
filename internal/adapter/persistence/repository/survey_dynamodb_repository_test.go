package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo records the last request of each kind and answers with canned outputs.
type fakeDynamo struct {
	getOut    *dynamodb.GetItemOutput
	updateOut *dynamodb.UpdateItemOutput
	queryOut  *dynamodb.QueryOutput
	err       error

	put    *dynamodb.PutItemInput
	get    *dynamodb.GetItemInput
	update *dynamodb.UpdateItemInput
	query  *dynamodb.QueryInput
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.get = in
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, f.err
	}
	return f.getOut, f.err
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.put = in
	return &dynamodb.PutItemOutput{}, f.err
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.update = in
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, f.err
	}
	return f.updateOut, f.err
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.query = in
	if f.queryOut == nil {
		return &dynamodb.QueryOutput{}, f.err
	}
	return f.queryOut, f.err
}

func sampleSurvey() entities.Survey {
	comment := "Faltan especificaciones"
	s := entities.Survey{
		ID:               "lev-1",
		WorkID:           "obra-7",
		Number:           "LEV-2024-001",
		SurveyDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description:      "Recambio de luminarias",
		Reviews:          entities.NewBlockReviews(),
		PreviousMonthIPP: decimal.NewNullDecimal(decimal.NewFromInt(105)),
		BudgetItems: []entities.BudgetItem{
			{UCAP: entities.UCAP{Code: "U-01", InitialIPP: decimal.NewNullDecimal(decimal.NewFromInt(100))}, UnitValue: decimal.NewFromInt(50000), Quantity: decimal.NewFromInt(2)},
			{UCAP: entities.UCAP{Code: "U-02"}, UnitValue: decimal.NewFromInt(30000), Quantity: decimal.NewFromInt(1)},
		},
		InvestmentItems:    []entities.InvestmentItem{{OrderNumber: 1, Point: "P1", LuminaireQuantity: 3}},
		MaterialItems:      []entities.MaterialItem{{Material: entities.Material{Code: "M-1"}, UnitOfMeasure: "m", Quantity: decimal.RequireFromString("12.5")}},
		TravelExpenseItems: []entities.TravelExpenseItem{{ExpenseType: "fuel", Quantity: decimal.NewFromInt(2)}},
	}
	s.Reviews = s.Reviews.With(entities.BlockMaterials, entities.BlockReview{Status: entities.BlockStatusRejected, Comments: &comment})
	s.Reviews = s.Reviews.With(entities.BlockBudget, entities.BlockReview{Status: entities.BlockStatusApproved})
	return s
}

func marshalSurvey(t *testing.T, s entities.Survey) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toSurveyItem(s))
	require.NoError(t, err)
	return av
}

func TestSurveyItemMapping(t *testing.T) {
	s := sampleSurvey()
	got := fromSurveyItem(toSurveyItem(s))

	assert.Equal(t, s.ID, got.ID)
	assert.True(t, got.SurveyDate.Equal(s.SurveyDate))
	assert.True(t, got.RequestDate.IsZero())
	assert.Equal(t, s.Reviews, got.Reviews)
	assert.True(t, got.PreviousMonthIPP.Decimal.Equal(decimal.NewFromInt(105)))
	require.Len(t, got.BudgetItems, 2)
	assert.True(t, got.BudgetItems[0].UCAP.InitialIPP.Valid)
	assert.False(t, got.BudgetItems[1].UCAP.InitialIPP.Valid)
	assert.True(t, got.BudgetItems[0].UnitValue.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, s.InvestmentItems, got.InvestmentItems)
	assert.True(t, got.MaterialItems[0].Quantity.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "Combustible", got.TravelExpenseItems[0].Label())
}

func TestSurveyDynamoRepository_Create(t *testing.T) {
	f := &fakeDynamo{}
	repo := NewSurveyDynamoRepository(f, "")

	created, err := repo.Create(context.Background(), sampleSurvey())
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "surveys", aws.ToString(f.put.TableName))
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(f.put.ConditionExpression))
	assert.Contains(t, f.put.Item, "blocks")
}

func TestSurveyDynamoRepository_FetchSurvey(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := NewSurveyDynamoRepository(&fakeDynamo{}, "levantamientos")
		got, err := repo.FetchSurvey(context.Background(), "lev-1")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("found", func(t *testing.T) {
		f := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: marshalSurvey(t, sampleSurvey())}}
		repo := NewSurveyDynamoRepository(f, "levantamientos")
		got, err := repo.FetchSurvey(context.Background(), "lev-1")
		require.NoError(t, err)
		assert.Equal(t, "lev-1", got.ID)
		assert.Equal(t, entities.BlockStatusRejected, got.Status(entities.BlockMaterials))
		assert.Equal(t, "levantamientos", aws.ToString(f.get.TableName))
		assert.True(t, aws.ToBool(f.get.ConsistentRead))
	})

	t.Run("error", func(t *testing.T) {
		repo := NewSurveyDynamoRepository(&fakeDynamo{err: errors.New("throttled")}, "")
		_, err := repo.FetchSurvey(context.Background(), "lev-1")
		assert.Error(t, err)
	})
}

func TestSurveyDynamoRepository_ReviewBlock(t *testing.T) {
	t.Run("approve removes comment and requires pending", func(t *testing.T) {
		updated := sampleSurvey()
		f := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshalSurvey(t, updated)}}
		repo := NewSurveyDynamoRepository(f, "")

		got, err := repo.ReviewBlock(context.Background(), "lev-1", entities.BlockInvestment, entities.BlockStatusApproved, nil)
		require.NoError(t, err)
		assert.Equal(t, "lev-1", got.ID)

		in := f.update
		assert.Equal(t, "attribute_exists(#id) AND #blocks.#b.#status = :pending", aws.ToString(in.ConditionExpression))
		assert.Contains(t, aws.ToString(in.UpdateExpression), "REMOVE #blocks.#b.#comments")
		assert.Equal(t, "investment", in.ExpressionAttributeNames["#b"])
		assert.Equal(t, types.ReturnValuesOnConditionCheckFailureAllOld, in.ReturnValuesOnConditionCheckFailure)
	})

	t.Run("reject stores comment", func(t *testing.T) {
		f := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshalSurvey(t, sampleSurvey())}}
		repo := NewSurveyDynamoRepository(f, "")
		comment := "sin planos"

		_, err := repo.ReviewBlock(context.Background(), "lev-1", entities.BlockTravelExpenses, entities.BlockStatusRejected, &comment)
		require.NoError(t, err)
		assert.Contains(t, aws.ToString(f.update.UpdateExpression), "#blocks.#b.#comments = :comments")
		assert.Equal(t, &types.AttributeValueMemberS{Value: comment}, f.update.ExpressionAttributeValues[":comments"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "rejected"}, f.update.ExpressionAttributeValues[":decision"])
	})

	t.Run("condition failed on existing item", func(t *testing.T) {
		f := &fakeDynamo{err: &types.ConditionalCheckFailedException{Message: aws.String("failed"), Item: marshalSurvey(t, sampleSurvey())}}
		repo := NewSurveyDynamoRepository(f, "")

		_, err := repo.ReviewBlock(context.Background(), "lev-1", entities.BlockMaterials, entities.BlockStatusApproved, nil)
		assert.ErrorIs(t, err, interfaces.ErrInvalidTransition)
	})

	t.Run("condition failed on missing item", func(t *testing.T) {
		f := &fakeDynamo{err: &types.ConditionalCheckFailedException{Message: aws.String("failed")}}
		repo := NewSurveyDynamoRepository(f, "")

		got, err := repo.ReviewBlock(context.Background(), "lev-404", entities.BlockMaterials, entities.BlockStatusApproved, nil)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		f := &fakeDynamo{}
		repo := NewSurveyDynamoRepository(f, "")
		_, err := repo.ReviewBlock(context.Background(), "lev-1", entities.BlockBudget, entities.BlockStatusPending, nil)
		assert.ErrorIs(t, err, interfaces.ErrInvalidTransition)
		assert.Nil(t, f.update)
	})
}

func TestSurveyDynamoRepository_ApproveAllBlocks(t *testing.T) {
	current := sampleSurvey()
	f := &fakeDynamo{
		getOut:    &dynamodb.GetItemOutput{Item: marshalSurvey(t, current)},
		updateOut: &dynamodb.UpdateItemOutput{Attributes: marshalSurvey(t, current.ApproveAll())},
	}
	repo := NewSurveyDynamoRepository(f, "")

	got, err := repo.ApproveAllBlocks(context.Background(), "lev-1")
	require.NoError(t, err)
	assert.Equal(t, entities.BlockStatusApproved, got.Status(entities.BlockInvestment))
	assert.Equal(t, entities.BlockStatusRejected, got.Status(entities.BlockMaterials))

	cond := aws.ToString(f.update.ConditionExpression)
	assert.Equal(t, 2, strings.Count(cond, "= :pending"), "only investment and travel were pending")
	assert.Equal(t, "investment", f.update.ExpressionAttributeNames["#b1"])
	assert.Equal(t, "travel_expenses", f.update.ExpressionAttributeNames["#b3"])
	assert.NotContains(t, f.update.ExpressionAttributeNames, "#b0")
}

func TestSurveyDynamoRepository_ApproveAllNothingPending(t *testing.T) {
	current := sampleSurvey().ApproveAll()
	f := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: marshalSurvey(t, current)}}
	repo := NewSurveyDynamoRepository(f, "")

	got, err := repo.ApproveAllBlocks(context.Background(), "lev-1")
	require.NoError(t, err)
	assert.Equal(t, current.Reviews, got.Reviews)
	assert.Nil(t, f.update)
}

func TestSurveyDynamoRepository_ReopenForEditing(t *testing.T) {
	current := sampleSurvey()
	f := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshalSurvey(t, current.Reopen())}}
	repo := NewSurveyDynamoRepository(f, "")
	reason := "ajustar materiales"

	got, err := repo.ReopenForEditing(context.Background(), "lev-1", &reason)
	require.NoError(t, err)
	assert.False(t, got.HasReviewedBlocks())
	require.NotNil(t, got.Reviews.Materials.Comments)

	expr := aws.ToString(f.update.UpdateExpression)
	assert.Equal(t, 4, strings.Count(expr, "#status = :pending"))
	assert.Contains(t, expr, "#reopen_reason = :reopen_reason")
	assert.Equal(t, "attribute_exists(#id)", aws.ToString(f.update.ConditionExpression))

	_, err = repo.ReopenForEditing(context.Background(), "lev-1", nil)
	require.NoError(t, err)
	assert.Contains(t, aws.ToString(f.update.UpdateExpression), "REMOVE #reopen_reason")
}
