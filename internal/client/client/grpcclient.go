package client

import (
	"context"
	"time"

	"github.com/mantisworks/mantis-field/internal/client/models"
	"github.com/mantisworks/mantis-field/internal/common"
	pb "github.com/mantisworks/mantis-field/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GRPCClient is the concrete Client over the MANTIS sync gateway.
type GRPCClient struct {
	endpointURL  string
	callTimeout  time.Duration
	conn         *grpc.ClientConn
	client       pb.FieldGatewayClient
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the officer's access token to every call.
// On an expired-token rejection it refreshes the session once and replays the
// call with the new token.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {
		st, ok := status.FromError(err)
		if !ok {
			return err
		}
		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}
		if s.refreshToken == "" {
			return err
		}

		resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = resp.AccessToken
		s.refreshToken = resp.RefreshToken

		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	return err
}

func NewGRPCClient(endpointURL string, callTimeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, callTimeout: callTimeout}
	if err := c.initConn(); err != nil {
		return nil, err
	}
	return c, nil
}

// callCtx bounds a gateway call with the configured timeout. A zero timeout
// leaves the caller's deadline in charge.
func (s *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout > 0 {
		return context.WithTimeout(ctx, s.callTimeout)
	}
	return context.WithCancel(ctx)
}

func (s *GRPCClient) initConn() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFieldGatewayClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) SetTokens(accessToken, refreshToken string) {
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

func (s *GRPCClient) Tokens() (string, string) {
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) Login(ctx context.Context, badgeNumber string, password []byte) error {

	req := &pb.LoginRequest{BadgeNumber: badgeNumber, Password: string(password)}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken

	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) CreateInfringement(ctx context.Context, rec *models.QueuedInfringement) (string, error) {

	req := &pb.CreateInfringementRequest{
		ClientRef:           rec.LocalID,
		VehicleRegNumber:    rec.VehicleRegNumber,
		OffenceId:           rec.OffenceID,
		DriverLicenceNumber: rec.DriverLicenceNumber,
		LocationDescription: rec.LocationDescription,
		Notes:               rec.Notes,
		RecordedAt:          rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if rec.Gps != nil {
		req.Gps = &pb.GpsFix{
			Latitude:  rec.Gps.Latitude,
			Longitude: rec.Gps.Longitude,
			Accuracy:  rec.Gps.Accuracy,
		}
	}

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.CreateInfringement(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Id, nil
}

func (s *GRPCClient) GetPhotoUploadURL(ctx context.Context, infringementID, fileName string) (string, string, error) {

	req := &pb.GetPhotoUploadUrlRequest{InfringementId: infringementID, FileName: fileName}

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GetPhotoUploadUrl(ctx, req)
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.Url, nil
}

func (s *GRPCClient) ConfirmEvidencePhoto(ctx context.Context, infringementID, key string) (string, error) {

	req := &pb.ConfirmEvidencePhotoRequest{InfringementId: infringementID, Key: key}

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ConfirmEvidencePhoto(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Url, nil
}

// mapError converts transport failures to sentinel errors and everything else
// to a *RemoteError with the gateway's message, so callers never have to look
// at gRPC status values.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return &RemoteError{Code: st.Code().String(), Message: st.Message()}
	}
}
