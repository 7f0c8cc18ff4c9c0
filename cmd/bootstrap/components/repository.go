package components

import (
	"shareit/internal/infra/postgres"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"go.uber.org/fx"
)

// Each store backs both the command-side repository port and the matching
// read-side view ports, so a single constructor is annotated with every
// interface it satisfies.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			postgres.NewUserStore,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserViewStore)),
			fx.As(new(queries.UserExistenceStore)),
		),
		fx.Annotate(
			postgres.NewItemStore,
			fx.As(new(commands.ItemRepository)),
			fx.As(new(queries.ItemViewStore)),
		),
		fx.Annotate(
			postgres.NewBookingStore,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingViewStore)),
			fx.As(new(queries.BookingSummaryStore)),
		),
		fx.Annotate(
			postgres.NewCommentStore,
			fx.As(new(commands.CommentRepository)),
			fx.As(new(queries.CommentViewStore)),
		),
	),
)
