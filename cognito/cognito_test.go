package cognito

import (
	"context"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/rs/zerolog"
)

type fakeCognito struct {
	pools           []cognitotypes.UserPoolDescriptionType
	resourceServers []cognitotypes.ResourceServerType
	clients         []cognitotypes.UserPoolClientDescription
	secrets         map[string]string

	createdPools           int
	createdResourceServers int
	createdClients         int
}

func (f *fakeCognito) ListUserPools(ctx context.Context, params *cognitoidentityprovider.ListUserPoolsInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListUserPoolsOutput, error) {
	return &cognitoidentityprovider.ListUserPoolsOutput{UserPools: f.pools}, nil
}

func (f *fakeCognito) CreateUserPool(ctx context.Context, params *cognitoidentityprovider.CreateUserPoolInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.CreateUserPoolOutput, error) {
	f.createdPools++
	return &cognitoidentityprovider.CreateUserPoolOutput{
		UserPool: &cognitotypes.UserPoolType{Id: awssdk.String("us-east-1_NewPool")},
	}, nil
}

func (f *fakeCognito) ListResourceServers(ctx context.Context, params *cognitoidentityprovider.ListResourceServersInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListResourceServersOutput, error) {
	return &cognitoidentityprovider.ListResourceServersOutput{ResourceServers: f.resourceServers}, nil
}

func (f *fakeCognito) CreateResourceServer(ctx context.Context, params *cognitoidentityprovider.CreateResourceServerInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.CreateResourceServerOutput, error) {
	f.createdResourceServers++
	return &cognitoidentityprovider.CreateResourceServerOutput{}, nil
}

func (f *fakeCognito) ListUserPoolClients(ctx context.Context, params *cognitoidentityprovider.ListUserPoolClientsInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListUserPoolClientsOutput, error) {
	return &cognitoidentityprovider.ListUserPoolClientsOutput{UserPoolClients: f.clients}, nil
}

func (f *fakeCognito) DescribeUserPoolClient(ctx context.Context, params *cognitoidentityprovider.DescribeUserPoolClientInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.DescribeUserPoolClientOutput, error) {
	clientID := awssdk.ToString(params.ClientId)
	return &cognitoidentityprovider.DescribeUserPoolClientOutput{
		UserPoolClient: &cognitotypes.UserPoolClientType{
			ClientId:     params.ClientId,
			ClientSecret: awssdk.String(f.secrets[clientID]),
		},
	}, nil
}

func (f *fakeCognito) CreateUserPoolClient(ctx context.Context, params *cognitoidentityprovider.CreateUserPoolClientInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.CreateUserPoolClientOutput, error) {
	f.createdClients++
	return &cognitoidentityprovider.CreateUserPoolClientOutput{
		UserPoolClient: &cognitotypes.UserPoolClientType{
			ClientId:     awssdk.String("new-client"),
			ClientSecret: awssdk.String("new-secret"),
		},
	}, nil
}

func TestSetupCreatesEverything(t *testing.T) {
	fake := &fakeCognito{}
	svc := NewService(fake, "us-east-1", zerolog.Nop())

	cfg, err := svc.Setup(context.Background())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if fake.createdPools != 1 || fake.createdResourceServers != 1 || fake.createdClients != 1 {
		t.Errorf("expected pool/resource-server/client created, got %d/%d/%d",
			fake.createdPools, fake.createdResourceServers, fake.createdClients)
	}
	if cfg.ClientID != "new-client" || cfg.ClientSecret != "new-secret" {
		t.Errorf("unexpected client config: %+v", cfg)
	}

	want := "https://cognito-idp.us-east-1.amazonaws.com/us-east-1_NewPool/.well-known/openid-configuration"
	if cfg.DiscoveryURL != want {
		t.Errorf("unexpected discovery URL: %s", cfg.DiscoveryURL)
	}
}

func TestSetupReusesExisting(t *testing.T) {
	fake := &fakeCognito{
		pools: []cognitotypes.UserPoolDescriptionType{
			{Id: awssdk.String("us-east-1_Existing"), Name: awssdk.String(userPoolName)},
		},
		resourceServers: []cognitotypes.ResourceServerType{
			{Identifier: awssdk.String(resourceServerID)},
		},
		clients: []cognitotypes.UserPoolClientDescription{
			{ClientId: awssdk.String("existing-client"), ClientName: awssdk.String(clientName)},
		},
		secrets: map[string]string{"existing-client": "existing-secret"},
	}
	svc := NewService(fake, "us-east-1", zerolog.Nop())

	cfg, err := svc.Setup(context.Background())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if fake.createdPools != 0 || fake.createdResourceServers != 0 || fake.createdClients != 0 {
		t.Errorf("expected nothing created on reuse, got %d/%d/%d",
			fake.createdPools, fake.createdResourceServers, fake.createdClients)
	}
	if cfg.UserPoolID != "us-east-1_Existing" || cfg.ClientSecret != "existing-secret" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
