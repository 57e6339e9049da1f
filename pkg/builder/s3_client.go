package builder

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// S3ClientConfig selects how an S3 client authenticates. Exactly one of the
// credential modes applies, checked in this order: web identity (RoleARN +
// WebIdentityTokenFile), assume role (RoleARN), static keys (AccessKey), then
// the default provider chain.
type S3ClientConfig struct {
	Region   string
	Endpoint string // "" for AWS; LocalStack/MinIO otherwise

	ForcePathStyle bool

	AccessKey    string
	SecretKey    string
	SessionToken string

	RoleARN              string
	SessionName          string
	ExternalID           string
	WebIdentityTokenFile string
	Duration             time.Duration
}

// NewS3Client builds a client for cfg using the first matching credential mode.
func NewS3Client(ctx context.Context, cfg S3ClientConfig) (*s3.Client, error) {
	switch {
	case cfg.RoleARN != "" && cfg.WebIdentityTokenFile != "":
		return NewS3ClientWebIdentity(ctx, cfg.Region, cfg.RoleARN, cfg.SessionName,
			cfg.WebIdentityTokenFile, cfg.Duration, cfg.Endpoint, cfg.ForcePathStyle)
	case cfg.RoleARN != "":
		var source aws.CredentialsProvider
		if cfg.AccessKey != "" {
			source = aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, cfg.SessionToken))
		}
		return NewS3ClientAssumeRole(ctx, cfg.Region, cfg.RoleARN, cfg.SessionName,
			cfg.Duration, cfg.ExternalID, source, cfg.Endpoint, cfg.ForcePathStyle)
	case cfg.AccessKey != "":
		if cfg.SecretKey == "" {
			return nil, fmt.Errorf("secret key is required with an access key")
		}
		return NewS3ClientStatic(ctx, cfg.Region, cfg.AccessKey, cfg.SecretKey,
			cfg.SessionToken, cfg.Endpoint, cfg.ForcePathStyle)
	default:
		return NewS3ClientDefault(ctx, cfg.Region, cfg.Endpoint, cfg.ForcePathStyle)
	}
}

// sharedResolver returns an endpoint resolver that maps BOTH S3 and STS to the same override.
func sharedResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		switch service {
		case s3.ServiceID, sts.ServiceID:
			return aws.Endpoint{URL: endpoint, HostnameImmutable: true}, nil
		default:
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		}
	})
}

func baseLoaders(region, endpoint string) []func(*config.LoadOptions) error {
	var loaders []func(*config.LoadOptions) error
	if region != "" {
		loaders = append(loaders, config.WithRegion(region))
	}
	if endpoint != "" {
		loaders = append(loaders, config.WithEndpointResolverWithOptions(sharedResolver(endpoint)))
	}
	return loaders
}

// NewS3ClientDefault creates an S3 client from the default credential chain.
func NewS3ClientDefault(ctx context.Context, region, endpoint string, forcePathStyle bool) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, baseLoaders(region, endpoint)...)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) { o.UsePathStyle = forcePathStyle }), nil
}

// NewS3ClientStatic creates an S3 client using static credentials.
// If endpoint != "", it's used (LocalStack/MinIO). forcePathStyle=true for emulators.
func NewS3ClientStatic(
	ctx context.Context,
	region string,
	accessKey string,
	secretKey string,
	sessionToken string, // "" if none
	endpoint string, // "" for AWS
	forcePathStyle bool,
) (*s3.Client, error) {
	loaders := baseLoaders(region, endpoint)
	loaders = append(loaders, config.WithCredentialsProvider(
		credentials.NewStaticCredentialsProvider(accessKey, secretKey, sessionToken),
	))
	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) { o.UsePathStyle = forcePathStyle }), nil
}

// NewS3ClientAssumeRole creates an S3 client by assuming an IAM role via STS.
// sourceCreds: underlying creds to call STS. If nil, default chain.
func NewS3ClientAssumeRole(
	ctx context.Context,
	region string,
	roleARN string,
	sessionName string,
	duration time.Duration,
	externalID string,
	sourceCreds aws.CredentialsProvider,
	endpoint string,
	forcePathStyle bool,
) (*s3.Client, error) {
	loaders := baseLoaders(region, endpoint)
	if sourceCreds != nil {
		loaders = append(loaders, config.WithCredentialsProvider(sourceCreds))
	}
	baseCfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, err
	}

	// STS shares the resolver so emulators are not bypassed.
	stsClient := sts.NewFromConfig(baseCfg)

	provider := stscreds.NewAssumeRoleProvider(stsClient, roleARN, func(o *stscreds.AssumeRoleOptions) {
		if sessionName != "" {
			o.RoleSessionName = sessionName
		}
		if duration > 0 {
			o.Duration = duration
		}
		if externalID != "" {
			o.ExternalID = &externalID
		}
	})

	assumed := baseCfg
	assumed.Credentials = aws.NewCredentialsCache(provider)

	return s3.NewFromConfig(assumed, func(o *s3.Options) { o.UsePathStyle = forcePathStyle }), nil
}

// NewS3ClientWebIdentity assumes a role using an OIDC/WebIdentity token file (e.g., EKS IRSA).
func NewS3ClientWebIdentity(
	ctx context.Context,
	region string,
	roleARN string,
	sessionName string,
	tokenFile string,
	duration time.Duration,
	endpoint string,
	forcePathStyle bool,
) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, baseLoaders(region, endpoint)...)
	if err != nil {
		return nil, err
	}
	stsClient := sts.NewFromConfig(cfg)
	provider := stscreds.NewWebIdentityRoleProvider(
		stsClient,
		roleARN,
		stscreds.IdentityTokenFile(tokenFile),
		func(o *stscreds.WebIdentityRoleOptions) {
			if sessionName != "" {
				o.RoleSessionName = sessionName
			}
			if duration > 0 {
				o.Duration = duration
			}
		},
	)

	assumed := cfg
	assumed.Credentials = aws.NewCredentialsCache(provider)

	return s3.NewFromConfig(assumed, func(o *s3.Options) { o.UsePathStyle = forcePathStyle }), nil
}
