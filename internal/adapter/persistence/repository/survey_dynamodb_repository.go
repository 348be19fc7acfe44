package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
)

const defaultSurveysTableName = "surveys"

type blockReviewItem struct {
	Status   string  `dynamodbav:"status"`
	Comments *string `dynamodbav:"comments,omitempty"`
}

type budgetLineItem struct {
	UCAPCode        string `dynamodbav:"ucap_code"`
	UCAPDescription string `dynamodbav:"ucap_description"`
	InitialIPP      string `dynamodbav:"initial_ipp,omitempty"`
	UnitValue       string `dynamodbav:"unit_value"`
	Quantity        string `dynamodbav:"quantity"`
}

type investmentLineItem struct {
	OrderNumber                int    `dynamodbav:"order_number"`
	Point                      string `dynamodbav:"point"`
	Description                string `dynamodbav:"description"`
	LuminaireQuantity          int    `dynamodbav:"luminaire_quantity"`
	RelocatedLuminaireQuantity int    `dynamodbav:"relocated_luminaire_quantity"`
	PoleQuantity               int    `dynamodbav:"pole_quantity"`
	BraidedNetwork             string `dynamodbav:"braided_network"`
	Latitude                   string `dynamodbav:"latitude"`
	Longitude                  string `dynamodbav:"longitude"`
}

type materialLineItem struct {
	MaterialCode        string `dynamodbav:"material_code"`
	MaterialDescription string `dynamodbav:"material_description"`
	UnitOfMeasure       string `dynamodbav:"unit_of_measure"`
	Quantity            string `dynamodbav:"quantity"`
	Observations        string `dynamodbav:"observations"`
}

type travelExpenseLineItem struct {
	ExpenseType  string `dynamodbav:"expense_type"`
	Quantity     string `dynamodbav:"quantity"`
	Observations string `dynamodbav:"observations"`
}

type surveyItem struct {
	ID                 string                     `dynamodbav:"id"`
	WorkID             string                     `dynamodbav:"work_id"`
	Number             string                     `dynamodbav:"number"`
	SurveyDate         string                     `dynamodbav:"survey_date"`
	RequestDate        string                     `dynamodbav:"request_date"`
	Description        string                     `dynamodbav:"description"`
	PreviousMonthIPP   string                     `dynamodbav:"previous_month_ipp,omitempty"`
	Blocks             map[string]blockReviewItem `dynamodbav:"blocks"`
	BudgetItems        []budgetLineItem           `dynamodbav:"budget_items"`
	InvestmentItems    []investmentLineItem       `dynamodbav:"investment_items"`
	MaterialItems      []materialLineItem         `dynamodbav:"material_items"`
	TravelExpenseItems []travelExpenseLineItem    `dynamodbav:"travel_expense_items"`
	ReopenReason       *string                    `dynamodbav:"reopen_reason,omitempty"`
	CreatedAt          string                     `dynamodbav:"created_at"`
	UpdatedAt          string                     `dynamodbav:"updated_at"`
}

// SurveyDynamoRepository persists the survey aggregate as a single DynamoDB item.
//
// Table requirements:
//   - PK: id (string)
//
// Block reviews live in the "blocks" map keyed by block tag, so every transition is
// a single conditional UpdateItem on blocks.<tag>.status.
type SurveyDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISurveyStore = (*SurveyDynamoRepository)(nil)

func NewSurveyDynamoRepository(ddb dynamoAPI, tableName string) *SurveyDynamoRepository {
	return &SurveyDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSurveysTableName),
	}
}

func (r *SurveyDynamoRepository) Create(ctx context.Context, s entities.Survey) (entities.Survey, error) {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toSurveyItem(s))
	if err != nil {
		return entities.Survey{}, eris.Wrap(err, "dynamodb: marshal survey")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Survey{}, eris.Wrap(err, "dynamodb: put survey")
	}
	return s, nil
}

func (r *SurveyDynamoRepository) FetchSurvey(ctx context.Context, id string) (entities.Survey, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Survey{}, eris.Wrap(err, "dynamodb: get survey")
	}
	if len(out.Item) == 0 {
		return entities.Survey{}, nil
	}

	var it surveyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Survey{}, eris.Wrap(err, "dynamodb: unmarshal survey")
	}
	return fromSurveyItem(it), nil
}

func (r *SurveyDynamoRepository) ReviewBlock(ctx context.Context, id string, block entities.Block, decision entities.BlockStatus, comments *string) (entities.Survey, error) {
	if !block.Valid() {
		return entities.Survey{}, interfaces.ErrInvalidTransition
	}
	if decision != entities.BlockStatusApproved && decision != entities.BlockStatusRejected {
		return entities.Survey{}, interfaces.ErrInvalidTransition
	}
	return r.update(ctx, id, func(now string) updateSpec {
		names := map[string]string{
			"#blocks":     "blocks",
			"#b":          string(block),
			"#status":     "status",
			"#comments":   "comments",
			"#updated_at": "updated_at",
		}
		vals := map[string]types.AttributeValue{
			":decision":   &types.AttributeValueMemberS{Value: string(decision)},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.BlockStatusPending)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		spec := updateSpec{
			condition: "#blocks.#b.#status = :pending",
			names:     names,
			values:    vals,
		}
		switch decision {
		case entities.BlockStatusRejected:
			vals[":comments"] = commentValue(comments)
			spec.expr = "SET #blocks.#b.#status = :decision, #blocks.#b.#comments = :comments, #updated_at = :updated_at"
		default:
			spec.expr = "SET #blocks.#b.#status = :decision, #updated_at = :updated_at REMOVE #blocks.#b.#comments"
		}
		return spec
	})
}

// ApproveAllBlocks approves the blocks that are pending at read time. The write is
// conditioned on those blocks still being pending.
func (r *SurveyDynamoRepository) ApproveAllBlocks(ctx context.Context, id string) (entities.Survey, error) {
	current, err := r.FetchSurvey(ctx, id)
	if err != nil || current.ID == "" {
		return current, err
	}
	if !current.AnyBlockPending() {
		return current, nil
	}

	return r.update(ctx, id, func(now string) updateSpec {
		names := map[string]string{
			"#blocks":     "blocks",
			"#status":     "status",
			"#comments":   "comments",
			"#updated_at": "updated_at",
		}
		vals := map[string]types.AttributeValue{
			":approved":   &types.AttributeValueMemberS{Value: string(entities.BlockStatusApproved)},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.BlockStatusPending)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		var sets, removes, conds []string
		for i, b := range entities.AllBlocks {
			if current.Status(b) != entities.BlockStatusPending {
				continue
			}
			ph := fmt.Sprintf("#b%d", i)
			names[ph] = string(b)
			sets = append(sets, fmt.Sprintf("#blocks.%s.#status = :approved", ph))
			removes = append(removes, fmt.Sprintf("#blocks.%s.#comments", ph))
			conds = append(conds, fmt.Sprintf("#blocks.%s.#status = :pending", ph))
		}
		sets = append(sets, "#updated_at = :updated_at")
		return updateSpec{
			expr:      "SET " + strings.Join(sets, ", ") + " REMOVE " + strings.Join(removes, ", "),
			condition: strings.Join(conds, " AND "),
			names:     names,
			values:    vals,
		}
	})
}

// ReopenForEditing sets every block back to pending. Comments stay in place.
func (r *SurveyDynamoRepository) ReopenForEditing(ctx context.Context, id string, reason *string) (entities.Survey, error) {
	return r.update(ctx, id, func(now string) updateSpec {
		names := map[string]string{
			"#blocks":     "blocks",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		vals := map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.BlockStatusPending)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		sets := make([]string, 0, len(entities.AllBlocks)+2)
		for i, b := range entities.AllBlocks {
			ph := fmt.Sprintf("#b%d", i)
			names[ph] = string(b)
			sets = append(sets, fmt.Sprintf("#blocks.%s.#status = :pending", ph))
		}
		sets = append(sets, "#updated_at = :updated_at")

		spec := updateSpec{names: names, values: vals}
		if reason != nil {
			names["#reopen_reason"] = "reopen_reason"
			vals[":reopen_reason"] = &types.AttributeValueMemberS{Value: *reason}
			sets = append(sets, "#reopen_reason = :reopen_reason")
			spec.expr = "SET " + strings.Join(sets, ", ")
		} else {
			names["#reopen_reason"] = "reopen_reason"
			spec.expr = "SET " + strings.Join(sets, ", ") + " REMOVE #reopen_reason"
		}
		return spec
	})
}

type updateSpec struct {
	expr      string
	condition string
	names     map[string]string
	values    map[string]types.AttributeValue
}

// update applies a conditional UpdateItem. A failed condition on a missing item
// yields a zero Survey; on an existing item it yields ErrInvalidTransition.
func (r *SurveyDynamoRepository) update(ctx context.Context, id string, build func(now string) updateSpec) (entities.Survey, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	spec := build(now)

	condition := "attribute_exists(#id)"
	if spec.condition != "" {
		condition += " AND " + spec.condition
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String(condition),
		UpdateExpression:                    aws.String(spec.expr),
		ExpressionAttributeValues:           spec.values,
		ExpressionAttributeNames:            mergeNames(spec.names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Survey{}, nil
			}
			return entities.Survey{}, interfaces.ErrInvalidTransition
		}
		return entities.Survey{}, eris.Wrap(err, "dynamodb: update survey")
	}
	if len(out.Attributes) == 0 {
		return entities.Survey{}, nil
	}
	var it surveyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Survey{}, eris.Wrap(err, "dynamodb: unmarshal survey")
	}
	return fromSurveyItem(it), nil
}

func commentValue(c *string) types.AttributeValue {
	if c == nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	return &types.AttributeValueMemberS{Value: *c}
}

func toSurveyItem(s entities.Survey) surveyItem {
	it := surveyItem{
		ID:                 s.ID,
		WorkID:             s.WorkID,
		Number:             s.Number,
		SurveyDate:         formatTime(s.SurveyDate),
		RequestDate:        formatTime(s.RequestDate),
		Description:        s.Description,
		PreviousMonthIPP:   nullDecimalToString(s.PreviousMonthIPP),
		Blocks:             make(map[string]blockReviewItem, len(entities.AllBlocks)),
		BudgetItems:        make([]budgetLineItem, 0, len(s.BudgetItems)),
		InvestmentItems:    make([]investmentLineItem, 0, len(s.InvestmentItems)),
		MaterialItems:      make([]materialLineItem, 0, len(s.MaterialItems)),
		TravelExpenseItems: make([]travelExpenseLineItem, 0, len(s.TravelExpenseItems)),
		CreatedAt:          formatTime(s.CreatedAt),
		UpdatedAt:          formatTime(s.UpdatedAt),
	}
	for _, b := range entities.AllBlocks {
		rev := s.Reviews.Get(b)
		it.Blocks[string(b)] = blockReviewItem{Status: string(rev.Status), Comments: rev.Comments}
	}
	for _, b := range s.BudgetItems {
		it.BudgetItems = append(it.BudgetItems, budgetLineItem{
			UCAPCode:        b.UCAP.Code,
			UCAPDescription: b.UCAP.Description,
			InitialIPP:      nullDecimalToString(b.UCAP.InitialIPP),
			UnitValue:       decimalToString(b.UnitValue),
			Quantity:        decimalToString(b.Quantity),
		})
	}
	for _, v := range s.InvestmentItems {
		it.InvestmentItems = append(it.InvestmentItems, investmentLineItem(v))
	}
	for _, m := range s.MaterialItems {
		it.MaterialItems = append(it.MaterialItems, materialLineItem{
			MaterialCode:        m.Material.Code,
			MaterialDescription: m.Material.Description,
			UnitOfMeasure:       m.UnitOfMeasure,
			Quantity:            decimalToString(m.Quantity),
			Observations:        m.Observations,
		})
	}
	for _, t := range s.TravelExpenseItems {
		it.TravelExpenseItems = append(it.TravelExpenseItems, travelExpenseLineItem{
			ExpenseType:  t.ExpenseType,
			Quantity:     decimalToString(t.Quantity),
			Observations: t.Observations,
		})
	}
	return it
}

func fromSurveyItem(it surveyItem) entities.Survey {
	s := entities.Survey{
		ID:               it.ID,
		WorkID:           it.WorkID,
		Number:           it.Number,
		SurveyDate:       parseTime(it.SurveyDate),
		RequestDate:      parseTime(it.RequestDate),
		Description:      it.Description,
		Reviews:          entities.NewBlockReviews(),
		PreviousMonthIPP: nullDecimalFromString(it.PreviousMonthIPP),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
	for tag, rev := range it.Blocks {
		b, ok := entities.ParseBlock(tag)
		if !ok {
			continue
		}
		s.Reviews = s.Reviews.With(b, entities.BlockReview{Status: entities.ParseBlockStatus(rev.Status), Comments: rev.Comments})
	}
	for _, b := range it.BudgetItems {
		s.BudgetItems = append(s.BudgetItems, entities.BudgetItem{
			UCAP: entities.UCAP{
				Code:        b.UCAPCode,
				Description: b.UCAPDescription,
				InitialIPP:  nullDecimalFromString(b.InitialIPP),
			},
			UnitValue: decimalFromString(b.UnitValue),
			Quantity:  decimalFromString(b.Quantity),
		})
	}
	for _, v := range it.InvestmentItems {
		s.InvestmentItems = append(s.InvestmentItems, entities.InvestmentItem(v))
	}
	for _, m := range it.MaterialItems {
		s.MaterialItems = append(s.MaterialItems, entities.MaterialItem{
			Material:      entities.Material{Code: m.MaterialCode, Description: m.MaterialDescription},
			UnitOfMeasure: m.UnitOfMeasure,
			Quantity:      decimalFromString(m.Quantity),
			Observations:  m.Observations,
		})
	}
	for _, t := range it.TravelExpenseItems {
		s.TravelExpenseItems = append(s.TravelExpenseItems, entities.TravelExpenseItem{
			ExpenseType:  t.ExpenseType,
			Quantity:     decimalFromString(t.Quantity),
			Observations: t.Observations,
		})
	}
	return s
}
