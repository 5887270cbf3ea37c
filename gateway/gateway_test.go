package gateway

import (
	"context"
	"fmt"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	actypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol/types"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/rs/zerolog"

	"github.com/gurre/agentcore-gateway/apperr"
	"github.com/gurre/agentcore-gateway/aws"
)

type fakeIAM struct {
	createErr   error
	putErr      error
	created     []*iam.CreateRoleInput
	putPolicies []*iam.PutRolePolicyInput
}

func (f *fakeIAM) CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, params)
	return &iam.CreateRoleOutput{Role: &iamtypes.Role{Arn: awssdk.String("arn:aws:iam::1:role/" + awssdk.ToString(params.RoleName))}}, nil
}

func (f *fakeIAM) GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
	return &iam.GetRoleOutput{Role: &iamtypes.Role{Arn: awssdk.String("arn:aws:iam::1:role/" + awssdk.ToString(params.RoleName))}}, nil
}

func (f *fakeIAM) PutRolePolicy(ctx context.Context, params *iam.PutRolePolicyInput, optFns ...func(*iam.Options)) (*iam.PutRolePolicyOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.putPolicies = append(f.putPolicies, params)
	return &iam.PutRolePolicyOutput{}, nil
}

type fakeAgentCore struct {
	aws.AgentCoreClient

	createErr error
	created   []*bedrockagentcorecontrol.CreateGatewayInput

	listItems []actypes.GatewaySummary

	getOut *bedrockagentcorecontrol.GetGatewayOutput
	getErr error

	deleteErr error
	deleted   []string
}

func (f *fakeAgentCore) CreateGateway(ctx context.Context, params *bedrockagentcorecontrol.CreateGatewayInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.CreateGatewayOutput, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, params)
	return &bedrockagentcorecontrol.CreateGatewayOutput{
		GatewayId:      awssdk.String("gw-new"),
		GatewayUrl:     awssdk.String("https://gw-new.gateway.bedrock-agentcore.us-east-1.amazonaws.com/mcp"),
		Name:           params.Name,
		Status:         actypes.GatewayStatusCreating,
		AuthorizerType: params.AuthorizerType,
		ProtocolType:   params.ProtocolType,
		RoleArn:        params.RoleArn,
	}, nil
}

func (f *fakeAgentCore) ListGateways(ctx context.Context, params *bedrockagentcorecontrol.ListGatewaysInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.ListGatewaysOutput, error) {
	return &bedrockagentcorecontrol.ListGatewaysOutput{Items: f.listItems}, nil
}

func (f *fakeAgentCore) GetGateway(ctx context.Context, params *bedrockagentcorecontrol.GetGatewayInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.GetGatewayOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeAgentCore) DeleteGateway(ctx context.Context, params *bedrockagentcorecontrol.DeleteGatewayInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.DeleteGatewayOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deleted = append(f.deleted, awssdk.ToString(params.GatewayIdentifier))
	return &bedrockagentcorecontrol.DeleteGatewayOutput{}, nil
}

func newTestService(ac *fakeAgentCore, iamc *fakeIAM) *Service {
	return NewService(ac, iamc, "test-gateway-role", zerolog.Nop())
}

func TestCreateWithJWTAuth(t *testing.T) {
	ac := &fakeAgentCore{}
	iamc := &fakeIAM{}
	svc := newTestService(ac, iamc)

	gw, err := svc.Create(context.Background(), CreateInput{
		Name: "demo",
		Auth: &JWTAuthConfig{ClientID: "client-1", DiscoveryURL: "https://cognito/.well-known/openid-configuration"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if gw.GatewayID != "gw-new" {
		t.Errorf("unexpected gateway id %q", gw.GatewayID)
	}

	input := ac.created[0]
	if input.AuthorizerType != actypes.AuthorizerTypeCustomJwt {
		t.Errorf("expected CUSTOM_JWT authorizer, got %v", input.AuthorizerType)
	}
	authCfg := input.AuthorizerConfiguration.(*actypes.AuthorizerConfigurationMemberCustomJWTAuthorizer)
	if len(authCfg.Value.AllowedClients) != 1 || authCfg.Value.AllowedClients[0] != "client-1" {
		t.Errorf("unexpected allowed clients: %v", authCfg.Value.AllowedClients)
	}

	// Role provisioning happens before gateway creation.
	if len(iamc.created) != 1 || len(iamc.putPolicies) != 1 {
		t.Errorf("expected role and inline policy created, got %d/%d", len(iamc.created), len(iamc.putPolicies))
	}
}

func TestCreateWithoutAuth(t *testing.T) {
	ac := &fakeAgentCore{}
	svc := newTestService(ac, &fakeIAM{})

	_, err := svc.Create(context.Background(), CreateInput{Name: "open"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if ac.created[0].AuthorizerType != actypes.AuthorizerTypeNone {
		t.Errorf("expected NONE authorizer, got %v", ac.created[0].AuthorizerType)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(&fakeAgentCore{}, &fakeIAM{})

	if _, err := svc.Create(context.Background(), CreateInput{}); apperr.KindOf(err) != apperr.BadRequest {
		t.Errorf("expected BadRequest for missing name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "n", Auth: &JWTAuthConfig{}}); apperr.KindOf(err) != apperr.BadRequest {
		t.Errorf("expected BadRequest for incomplete auth config, got %v", err)
	}
}

func TestCreateConflictFallsBackToExisting(t *testing.T) {
	ac := &fakeAgentCore{
		createErr: &actypes.ConflictException{Message: awssdk.String("name exists")},
		listItems: []actypes.GatewaySummary{
			{GatewayId: awssdk.String("gw-a"), Name: awssdk.String("other")},
			{GatewayId: awssdk.String("gw-b"), Name: awssdk.String("demo")},
		},
		getOut: &bedrockagentcorecontrol.GetGatewayOutput{
			GatewayId:  awssdk.String("gw-b"),
			GatewayUrl: awssdk.String("https://gw-b.example/mcp"),
			Name:       awssdk.String("demo"),
			Status:     actypes.GatewayStatusReady,
		},
	}
	svc := newTestService(ac, &fakeIAM{})

	gw, err := svc.Create(context.Background(), CreateInput{Name: "demo"})
	if err != nil {
		t.Fatalf("expected existing gateway returned, got: %v", err)
	}
	if gw.GatewayID != "gw-b" || gw.GatewayURL != "https://gw-b.example/mcp" {
		t.Errorf("unexpected gateway: %+v", gw)
	}
}

func TestCreateConflictWithoutMatchIsConflict(t *testing.T) {
	ac := &fakeAgentCore{
		createErr: &actypes.ConflictException{Message: awssdk.String("name exists")},
		listItems: []actypes.GatewaySummary{{GatewayId: awssdk.String("gw-a"), Name: awssdk.String("other")}},
	}
	svc := newTestService(ac, &fakeIAM{})

	_, err := svc.Create(context.Background(), CreateInput{Name: "demo"})
	if apperr.KindOf(err) != apperr.Conflict {
		t.Errorf("expected Conflict, got %v", err)
	}
}

func TestEnsureRoleReusesExisting(t *testing.T) {
	iamc := &fakeIAM{createErr: &iamtypes.EntityAlreadyExistsException{Message: awssdk.String("exists")}}
	svc := newTestService(&fakeAgentCore{}, iamc)

	arn, err := svc.EnsureRole(context.Background())
	if err != nil {
		t.Fatalf("ensure role failed: %v", err)
	}
	if arn != "arn:aws:iam::1:role/test-gateway-role" {
		t.Errorf("unexpected role arn %q", arn)
	}
}

func TestEnsureRoleToleratesPolicyFailure(t *testing.T) {
	iamc := &fakeIAM{putErr: fmt.Errorf("access denied")}
	svc := newTestService(&fakeAgentCore{}, iamc)

	if _, err := svc.EnsureRole(context.Background()); err != nil {
		t.Errorf("expected policy attach failure to be tolerated, got: %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	ac := &fakeAgentCore{getErr: &actypes.ResourceNotFoundException{Message: awssdk.String("missing")}}
	svc := newTestService(ac, &fakeIAM{})

	_, err := svc.Get(context.Background(), "gw-missing")
	if !apperr.IsNotFound(err) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	ac := &fakeAgentCore{}
	svc := newTestService(ac, &fakeIAM{})

	if err := svc.Delete(context.Background(), "gw-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(ac.deleted) != 1 || ac.deleted[0] != "gw-1" {
		t.Errorf("unexpected deletes: %v", ac.deleted)
	}
}
