package deps

import (
	"context"
	"fmt"
	"passreset/internal/config"
	dl "passreset/internal/core/domain/logging"
	dn "passreset/internal/core/domain/notification"
	"passreset/internal/core/domain/token"
	duow "passreset/internal/core/domain/unit_of_work"
	"passreset/internal/core/domain/user"
	dbtoken "passreset/internal/db/token"
	uow "passreset/internal/db/unit_of_work"
	dbuser "passreset/internal/db/user"
	"passreset/internal/implementations/email"
	"passreset/internal/implementations/logging"
	passwordhasher "passreset/internal/implementations/password_hasher"
	passwordpolicy "passreset/internal/implementations/password_policy"
	resetlinksender "passreset/internal/implementations/reset_link_sender"
	tokengenerator "passreset/internal/implementations/token_generator"
	"passreset/internal/rabbitmq"
	notificationpublisher "passreset/internal/rabbitmq/publishers/notification"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB       *pgxpool.Pool
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	UnitOfWork      duow.UnitOfWork
	UserRepository  user.Repository
	TokenRepository token.Repository

	NotificationGateway dn.Gateway
	ResetLinkSender     token.ResetLinkSender

	TokenGenerator token.Generator
	PasswordHasher user.PasswordHasher
	PasswordPolicy user.PasswordPolicy
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.TokenRepository = dbtoken.NewPgxRepository(deps.DB)

	deps.TokenGenerator = tokengenerator.NewGenerator()
	deps.PasswordHasher = passwordhasher.NewPBKDF2(deps.Config.PasswordHashIterations)
	deps.PasswordPolicy = passwordpolicy.NewMinimumRequirements(deps.Config.PasswordMinLength)

	closeGateway := deps.initNotificationGateway()

	deps.ResetLinkSender = resetlinksender.New(
		deps.NotificationGateway,
		deps.Config.ResetLinkBaseURL(),
		deps.Config.SenderAddress,
		deps.Config.ReplyToAddress,
		deps.Config.ResetSubjectLine,
	)

	return deps, func() {
		closeFuncs := []func(){
			closeGateway,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initNotificationGateway() func() {
	switch deps.Config.NotificationTransport {
	case config.TransportSES:
		deps.initAwsConfig()
		deps.NotificationGateway = email.NewSESGateway(deps.AwsConfig)
		return func() {}
	case config.TransportAMQP:
		return deps.initRabbitmqGateway()
	default:
		panic(fmt.Sprintf("unknown notification transport: %q", deps.Config.NotificationTransport))
	}
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initRabbitmqGateway() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection

	rabbitmqChannel, err := rabbitmqConnection.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	_, err = rabbitmqChannel.QueueDeclare(deps.Config.RabbitmqNotificationQueue, true, false, false, false, nil)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	deps.NotificationGateway = notificationpublisher.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqNotificationQueue,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqChannel.Close()
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}
