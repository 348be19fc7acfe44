package repository

import (
	"context"
	"sort"

	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rotisserie/eris"
)

const (
	defaultReviewEventsTableName = "review_events"
	reviewEventsSurveyIDIndex    = "survey_id-index"
)

type reviewEventItem struct {
	ID        string  `dynamodbav:"id"`
	SurveyID  string  `dynamodbav:"survey_id"`
	Action    string  `dynamodbav:"action"`
	Block     string  `dynamodbav:"block,omitempty"`
	Comments  *string `dynamodbav:"comments,omitempty"`
	ActorID   string  `dynamodbav:"actor_id"`
	ActorRole string  `dynamodbav:"actor_role"`
	Date      string  `dynamodbav:"date"`
}

// ReviewEventDynamoRepository persists ReviewEvent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: survey_id-index (PK: survey_id)

type ReviewEventDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IReviewEventRepository = (*ReviewEventDynamoRepository)(nil)

func NewReviewEventDynamoRepository(ddb dynamoAPI, tableName string) *ReviewEventDynamoRepository {
	return &ReviewEventDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultReviewEventsTableName),
	}
}

func (r *ReviewEventDynamoRepository) Create(ctx context.Context, e entities.ReviewEvent) (entities.ReviewEvent, error) {
	av, err := attributevalue.MarshalMap(toReviewEventItem(e))
	if err != nil {
		return entities.ReviewEvent{}, eris.Wrap(err, "dynamodb: marshal review event")
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
		return entities.ReviewEvent{}, eris.Wrap(err, "dynamodb: put review event")
	}
	return e, nil
}

// ListBySurveyID returns the events of a survey, oldest first. The index is queried
// page by page.
func (r *ReviewEventDynamoRepository) ListBySurveyID(ctx context.Context, surveyID string) ([]entities.ReviewEvent, error) {
	events := make([]entities.ReviewEvent, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(reviewEventsSurveyIDIndex),
			KeyConditionExpression: aws.String("survey_id = :sid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":sid": &types.AttributeValueMemberS{Value: surveyID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, eris.Wrap(err, "dynamodb: query review events")
		}

		for _, raw := range out.Items {
			var it reviewEventItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, eris.Wrap(err, "dynamodb: unmarshal review event")
			}
			events = append(events, fromReviewEventItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events, nil
}

func toReviewEventItem(e entities.ReviewEvent) reviewEventItem {
	return reviewEventItem{
		ID:        e.ID,
		SurveyID:  e.SurveyID,
		Action:    string(e.Action),
		Block:     string(e.Block),
		Comments:  e.Comments,
		ActorID:   e.ActorID,
		ActorRole: e.ActorRole,
		Date:      formatTime(e.Date),
	}
}

func fromReviewEventItem(it reviewEventItem) entities.ReviewEvent {
	return entities.ReviewEvent{
		ID:        it.ID,
		SurveyID:  it.SurveyID,
		Action:    entities.ReviewAction(it.Action),
		Block:     entities.Block(it.Block),
		Comments:  it.Comments,
		ActorID:   it.ActorID,
		ActorRole: it.ActorRole,
		Date:      parseTime(it.Date),
	}
}
