package gateway

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/greenmarket/agridash/internal/domain"
	"github.com/greenmarket/agridash/internal/pkg/constants"
	"github.com/greenmarket/agridash/internal/pkg/logger"
)

const pollInterval = time.Second

// athenaAPI is the slice of the Athena client the gateway uses.
type athenaAPI interface {
	StartQueryExecution(ctx context.Context, params *athena.StartQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.StartQueryExecutionOutput, error)
	GetQueryExecution(ctx context.Context, params *athena.GetQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.GetQueryExecutionOutput, error)
	GetQueryResults(ctx context.Context, params *athena.GetQueryResultsInput, optFns ...func(*athena.Options)) (*athena.GetQueryResultsOutput, error)
}

// AthenaGateway submits queries to the interactive query service and
// polls until the remote job reaches a terminal state. Every call is
// bounded by queryTimeout; the poll loop never runs unbounded.
type AthenaGateway struct {
	client         athenaAPI
	database       string
	workgroup      string
	outputLocation string
	queryTimeout   time.Duration
}

func NewAthenaGateway(client *athena.Client, database, workgroup, outputLocation string, queryTimeout time.Duration) *AthenaGateway {
	return &AthenaGateway{
		client:         client,
		database:       database,
		workgroup:      workgroup,
		outputLocation: outputLocation,
		queryTimeout:   queryTimeout,
	}
}

func (g *AthenaGateway) Config() Config {
	return Config{Schema: g.database, Identity: g.workgroup}
}

func (g *AthenaGateway) Query(ctx context.Context, sqlText string, args ...interface{}) (*domain.ResultTable, error) {
	ctx, cancel := context.WithTimeout(ctx, g.queryTimeout)
	defer cancel()

	input := &athena.StartQueryExecutionInput{
		QueryString:           aws.String(sqlText),
		ClientRequestToken:    aws.String(uuid.NewString()),
		QueryExecutionContext: &types.QueryExecutionContext{Database: aws.String(g.database)},
		WorkGroup:             aws.String(g.workgroup),
		ResultConfiguration:   &types.ResultConfiguration{OutputLocation: aws.String(g.outputLocation)},
	}
	if len(args) > 0 {
		params, err := formatExecutionParameters(args)
		if err != nil {
			return nil, err
		}
		input.ExecutionParameters = params
	}

	started, err := g.client.StartQueryExecution(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: start query execution: %s", constants.ErrBackendUnavailable, err)
	}

	executionID := aws.ToString(started.QueryExecutionId)
	if err := g.waitForQuery(ctx, executionID); err != nil {
		return nil, err
	}

	return g.fetchResults(ctx, executionID)
}

// waitForQuery polls the execution status once per pollInterval until the
// job is terminal or the deadline hits.
func (g *AthenaGateway) waitForQuery(ctx context.Context, executionID string) error {
	var stillRunning = fmt.Errorf("query %s still running", executionID)

	operation := func() error {
		out, err := g.client.GetQueryExecution(ctx, &athena.GetQueryExecutionInput{
			QueryExecutionId: aws.String(executionID),
		})
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%w: get query execution: %s", constants.ErrBackendUnavailable, err))
		}

		status := out.QueryExecution.Status
		switch status.State {
		case types.QueryExecutionStateSucceeded:
			return nil
		case types.QueryExecutionStateFailed:
			reason := aws.ToString(status.StateChangeReason)
			return backoff.Permanent(fmt.Errorf("%w: %s", constants.ErrQueryFailed, reason))
		case types.QueryExecutionStateCancelled:
			return backoff.Permanent(fmt.Errorf("%w: query %s", constants.ErrQueryCancelled, executionID))
		default:
			return stillRunning
		}
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.NewConstantBackOff(pollInterval), ctx))
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		logger.Warnf(ctx, "athena query %s timed out after %s", executionID, g.queryTimeout)
		return fmt.Errorf("%w: query %s", constants.ErrQueryTimeout, executionID)
	}
	return err
}

func (g *AthenaGateway) fetchResults(ctx context.Context, executionID string) (*domain.ResultTable, error) {
	table := &domain.ResultTable{}
	var colTypes []string
	var nextToken *string
	firstPage := true

	for {
		out, err := g.client.GetQueryResults(ctx, &athena.GetQueryResultsInput{
			QueryExecutionId: aws.String(executionID),
			NextToken:        nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: get query results: %s", constants.ErrQueryFailed, err)
		}

		rows := out.ResultSet.Rows
		if firstPage {
			for _, ci := range out.ResultSet.ResultSetMetadata.ColumnInfo {
				table.Columns = append(table.Columns, aws.ToString(ci.Name))
				colTypes = append(colTypes, aws.ToString(ci.Type))
			}
			// first row of the first page repeats the column names
			if len(rows) > 0 {
				rows = rows[1:]
			}
			firstPage = false
		}

		for _, row := range rows {
			decoded := make(domain.ResultRow, len(table.Columns))
			for i, datum := range row.Data {
				if i >= len(table.Columns) {
					break
				}
				decoded[table.Columns[i]] = decodeCell(datum.VarCharValue, colTypes[i])
			}
			table.Rows = append(table.Rows, decoded)
		}

		nextToken = out.NextToken
		if nextToken == nil {
			return table, nil
		}
	}
}

// decodeCell converts a textual cell using the type the result metadata
// declares for its column, instead of guessing from the text.
func decodeCell(value *string, columnType string) interface{} {
	if value == nil {
		return nil
	}

	switch strings.ToLower(columnType) {
	case "tinyint", "smallint", "integer", "int", "bigint":
		n, err := strconv.ParseInt(*value, 10, 64)
		if err != nil {
			return nil
		}
		return n
	case "float", "real", "double", "decimal":
		f, err := strconv.ParseFloat(*value, 64)
		if err != nil {
			return nil
		}
		return f
	case "boolean":
		b, err := strconv.ParseBool(*value)
		if err != nil {
			return nil
		}
		return b
	default:
		// varchar, char, date, timestamp stay textual
		return *value
	}
}

// formatExecutionParameters renders bound args as the execution-parameter
// literals the service expects.
func formatExecutionParameters(args []interface{}) ([]string, error) {
	params := make([]string, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			params = append(params, "'"+strings.ReplaceAll(v, "'", "''")+"'")
		case int:
			params = append(params, strconv.Itoa(v))
		case int64:
			params = append(params, strconv.FormatInt(v, 10))
		case uint64:
			params = append(params, strconv.FormatUint(v, 10))
		case float64:
			params = append(params, strconv.FormatFloat(v, 'f', -1, 64))
		case time.Time:
			params = append(params, "DATE '"+v.Format("2006-01-02")+"'")
		default:
			return nil, fmt.Errorf("unsupported query parameter type %T", arg)
		}
	}
	return params, nil
}
