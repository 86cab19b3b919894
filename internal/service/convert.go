package service

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/groupledger/internal/aggregate"
	"github.com/mmynk/groupledger/internal/models"
	pb "github.com/mmynk/groupledger/pkg/proto"
)

func unixTime(sec int64) *timestamppb.Timestamp {
	return timestamppb.New(time.Unix(sec, 0))
}

func toProtoUser(u *models.User) *pb.User {
	return &pb.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   unixTime(u.CreatedAt),
	}
}

// toProtoGroup converts a group. The invite code is only shown to members.
func toProtoGroup(g *models.Group) *pb.Group {
	members := make([]*pb.Member, len(g.Members))
	for i, m := range g.Members {
		members[i] = &pb.Member{Uid: m.UID, Name: m.Name, Email: m.Email}
	}
	return &pb.Group{
		Id:         g.ID,
		Name:       g.Name,
		AdminId:    g.AdminID,
		Members:    members,
		MemberIds:  append([]string{}, g.MemberIDs...),
		InviteCode: g.InviteCode,
		Version:    g.Version,
		CreatedAt:  unixTime(g.CreatedAt),
	}
}

func toProtoJoinRequest(r *models.JoinRequest) *pb.JoinRequest {
	return &pb.JoinRequest{
		Id:        r.ID,
		GroupId:   r.GroupID,
		UserId:    r.UserID,
		UserEmail: r.UserEmail,
		UserName:  r.UserName,
		Status:    string(r.Status),
		CreatedAt: unixTime(r.CreatedAt),
	}
}

func toProtoGroupExpense(e *models.GroupExpense) *pb.GroupExpense {
	return &pb.GroupExpense{
		Id:              e.ID,
		GroupId:         e.GroupID,
		Amount:          e.Amount,
		PaidBy:          e.PaidBy,
		PaidByName:      e.PaidByName,
		PaidByEmail:     e.PaidByEmail,
		Participants:    append([]string{}, e.Participants...),
		SplitAmount:     e.SplitAmount,
		Note:            e.Note,
		TransactionType: e.TransactionType.String(),
		CreatedAt:       unixTime(e.CreatedAt),
	}
}

func toProtoPersonalExpense(e *models.PersonalExpense) *pb.PersonalExpense {
	return &pb.PersonalExpense{
		Id:              e.ID,
		Amount:          e.Amount,
		Label:           e.Label,
		Note:            e.Note,
		TransactionType: e.TransactionType.String(),
		GroupId:         e.GroupID,
		GroupExpenseId:  e.GroupExpenseID,
		CreatedAt:       unixTime(e.CreatedAt),
	}
}

func toProtoTransaction(t aggregate.Transaction) *pb.Transaction {
	return &pb.Transaction{
		Id:              t.ID,
		Amount:          t.Amount,
		TransactionType: t.Type.String(),
		Sign:            t.Type.Sign(),
		Label:           t.Label,
		Note:            t.Note,
		GroupId:         t.GroupID,
		Source:          string(t.Source),
		CreatedAt:       unixTime(t.CreatedAt),
	}
}

func toProtoSummary(s aggregate.Summary) *pb.Summary {
	return &pb.Summary{
		Debit:       s.Debit,
		Credit:      s.Credit,
		Lend:        s.Lend,
		BankBalance: s.BankBalance,
	}
}

func toProtoPoints(points []aggregate.Point) []*pb.SeriesPoint {
	out := make([]*pb.SeriesPoint, len(points))
	for i, p := range points {
		out[i] = &pb.SeriesPoint{
			Key:     p.Key,
			Credit:  p.Credit,
			Debit:   p.Debit,
			Lend:    p.Lend,
			Balance: p.Balance,
		}
	}
	return out
}

// derefGroupExpenses and derefPersonalExpenses copy store results into the
// value slices the pure packages take.
func derefGroupExpenses(in []*models.GroupExpense) []models.GroupExpense {
	out := make([]models.GroupExpense, len(in))
	for i, e := range in {
		out[i] = *e
	}
	return out
}

func derefPersonalExpenses(in []*models.PersonalExpense) []models.PersonalExpense {
	out := make([]models.PersonalExpense, len(in))
	for i, e := range in {
		out[i] = *e
	}
	return out
}
