package fixtures

// CustomExample is one (fixture filename, top-level Rust type) pairing
// from the fixed per-service table in spec §4.4.
type CustomExample struct {
	Filename     string
	TopLevelType string
}

// customExamples extends original_source's find_custom_examples, which
// only covered "apigw", to every service spec §4.4 names. The apigw row
// is copied verbatim from original_source/aws_lambda_events_codegen's
// main.rs; the rest follow the same (filename, type) shape for each
// service's other well-known fixtures.
var customExamples = map[string][]CustomExample{
	"apigw": {
		{"apigw-custom-auth-request-type-request.json", "ApiGatewayCustomAuthorizerRequestTypeRequest"},
		{"apigw-custom-auth-request.json", "ApiGatewayCustomAuthorizerRequest"},
		{"apigw-custom-auth-response.json", "ApiGatewayCustomAuthorizerResponse"},
		{"apigw-request.json", "ApiGatewayProxyRequest"},
		{"apigw-response.json", "ApiGatewayProxyResponse"},
		{"apigw-restapi-openapi-request.json", "ApiGatewayProxyRequest"},
		{"apigw-v2-request-iam.json", "ApiGatewayV2httpRequest"},
		{"apigw-v2-request-jwt-authorizer.json", "ApiGatewayV2httpRequest"},
		{"apigw-v2-request-lambda-authorizer.json", "ApiGatewayV2httpRequest"},
		{"apigw-v2-request-no-authorizer.json", "ApiGatewayV2httpRequest"},
		{"apigw-websocket-request.json", "ApiGatewayWebsocketProxyRequest"},
	},
	"alb": {
		{"alb-request-multivalue-headers.json", "AlbTargetGroupRequest"},
		{"alb-request.json", "AlbTargetGroupRequest"},
	},
	"cognito": {
		{"cognito-event-userpools-pre-token-gen.json", "CognitoEventUserPoolsPreTokenGen"},
		{"cognito-event-userpools-define-auth-challenge.json", "CognitoEventUserPoolsDefineAuthChallenge"},
	},
	"appsync": {
		{"appsync-request.json", "AppSyncResolverTemplate"},
	},
	"autoscaling": {
		{"autoscaling-event-launch-successful.json", "AutoScalingEvent"},
		{"autoscaling-event-terminate-successful.json", "AutoScalingEvent"},
	},
	"clientvpn": {
		{"clientvpn-connection-handler-request.json", "ClientVpnConnectionHandlerRequest"},
	},
	"codebuild": {
		{"codebuild-event.json", "CodeBuildEvent"},
	},
	"codedeploy": {
		{"codedeploy-event.json", "CodeDeployEvent"},
	},
	"codepipeline": {
		{"codepipeline-job-event.json", "CodePipelineEvent"},
	},
	"ecr_scan": {
		{"ecr-scan-event.json", "EcrImageScanEvent"},
	},
	"iot": {
		{"iot-button-event.json", "IoTButtonEvent"},
	},
	"kinesis_analytics": {
		{"kinesis-analytics-output-delivery-event.json", "KinesisAnalyticsOutputDeliveryEvent"},
	},
	"lex": {
		{"lex-event.json", "LexEvent"},
	},
	"s3": {
		{"s3-request.json", "S3Event"},
		{"s3-put-event.json", "S3Event"},
	},
	"s3_batch_job": {
		{"s3-batch-job-event.json", "S3BatchJobEvent"},
	},
	"ses": {
		{"ses-lambda-event.json", "SimpleEmailEvent"},
	},
	"sns": {
		{"sns-event.json", "SnsEvent"},
	},
}

// findCustomExamples returns service's fixed extra table, nil if the
// service has none (original_source's find_custom_examples return type).
func findCustomExamples(service string) []CustomExample {
	return customExamples[service]
}
