package service

import (
	"github.com/mmynk/tripledger/internal/calculator"
	"github.com/mmynk/tripledger/internal/currency"
	"github.com/mmynk/tripledger/internal/models"
	tripv1 "github.com/mmynk/tripledger/pkg/tripv1"
)

func splitToModel(s *tripv1.Split) models.Split {
	if s == nil {
		return models.Split{}
	}
	return models.Split{
		Method:            models.SplitMethod(s.Method),
		Payer:             s.Payer,
		CustomShares:      s.CustomShares,
		CustomLocalShares: s.CustomLocalShares,
	}
}

func splitToProto(s models.Split) *tripv1.Split {
	return &tripv1.Split{
		Method:            string(s.Method),
		Payer:             s.Payer,
		CustomShares:      s.CustomShares,
		CustomLocalShares: s.CustomLocalShares,
	}
}

func expenseToModel(e *tripv1.Expense) models.Expense {
	return models.Expense{
		ID:               e.Id,
		Description:      e.Description,
		AmountSettlement: e.AmountSettlement,
		AmountLocal:      e.AmountLocal,
		FXRate:           e.FxRate,
		Currency:         e.Currency,
		PaymentMethod:    models.PaymentMethod(e.PaymentMethod),
		Split:            splitToModel(e.Split),
		IsSettlement:     e.IsSettlement,
		Date:             e.Date,
	}
}

func expenseToProto(e models.Expense) *tripv1.Expense {
	return &tripv1.Expense{
		Id:               e.ID,
		Description:      e.Description,
		AmountLocal:      e.AmountLocal,
		AmountSettlement: e.AmountSettlement,
		FxRate:           e.FXRate,
		Currency:         e.Currency,
		PaymentMethod:    string(e.PaymentMethod),
		Split:            splitToProto(e.Split),
		IsSettlement:     e.IsSettlement,
		Date:             e.Date,
	}
}

func bookingToModel(b *tripv1.Booking) models.Booking {
	return models.Booking{
		ID:               b.Id,
		Type:             models.BookingType(b.Type),
		Name:             b.Name,
		Details:          b.Details,
		Confirmation:     b.Confirmation,
		Date:             b.Date,
		Time:             b.Time,
		AmountLocal:      b.AmountLocal,
		AmountSettlement: b.AmountSettlement,
		FXRate:           b.FxRate,
		Currency:         b.Currency,
		PaymentMethod:    models.PaymentMethod(b.PaymentMethod),
		Split:            splitToModel(b.Split),
	}
}

func bookingToProto(b models.Booking) *tripv1.Booking {
	return &tripv1.Booking{
		Id:               b.ID,
		Type:             string(b.Type),
		Name:             b.Name,
		Details:          b.Details,
		Confirmation:     b.Confirmation,
		Date:             b.Date,
		Time:             b.Time,
		AmountLocal:      b.AmountLocal,
		AmountSettlement: b.AmountSettlement,
		FxRate:           b.FXRate,
		Currency:         b.Currency,
		PaymentMethod:    string(b.PaymentMethod),
		Split:            splitToProto(b.Split),
	}
}

func planDayToModel(d *tripv1.PlanDay) models.PlanDay {
	day := models.PlanDay{Date: d.Date}
	for _, s := range d.Scheduled {
		if s == nil {
			continue
		}
		item := models.ScheduledItem{
			ID:               s.Id,
			Time:             s.Time,
			Activity:         s.Activity,
			Location:         s.Location,
			AmountLocal:      s.AmountLocal,
			AmountSettlement: s.AmountSettlement,
			FXRate:           s.FxRate,
			Currency:         s.Currency,
			PaymentMethod:    models.PaymentMethod(s.PaymentMethod),
		}
		if s.Split != nil {
			split := splitToModel(s.Split)
			item.Split = &split
		}
		day.Scheduled = append(day.Scheduled, item)
	}
	return day
}

func planDayToProto(d models.PlanDay) *tripv1.PlanDay {
	day := &tripv1.PlanDay{Date: d.Date}
	for _, s := range d.Scheduled {
		item := &tripv1.ScheduledItem{
			Id:               s.ID,
			Time:             s.Time,
			Activity:         s.Activity,
			Location:         s.Location,
			AmountLocal:      s.AmountLocal,
			AmountSettlement: s.AmountSettlement,
			FxRate:           s.FXRate,
			Currency:         s.Currency,
			PaymentMethod:    string(s.PaymentMethod),
		}
		if s.Split != nil {
			item.Split = splitToProto(*s.Split)
		}
		day.Scheduled = append(day.Scheduled, item)
	}
	return day
}

// tripToModel copies the editable parts of a wire trip. Owner and
// timestamps are set by the service and store.
func tripToModel(t *tripv1.Trip) *models.Trip {
	trip := &models.Trip{
		ID:                 t.Id,
		Title:              t.Title,
		Destination:        t.Destination,
		BaseCurrency:       t.BaseCurrency,
		SettlementCurrency: t.SettlementCurrency,
		FXRate:             t.FxRate,
		StartDate:          t.StartDate,
		EndDate:            t.EndDate,
		Members:            t.Members,
		ExternalNames:      t.ExternalNames,
		Version:            t.Version,
	}
	for _, e := range t.Expenses {
		if e != nil {
			trip.Expenses = append(trip.Expenses, expenseToModel(e))
		}
	}
	for _, b := range t.Bookings {
		if b != nil {
			trip.Bookings = append(trip.Bookings, bookingToModel(b))
		}
	}
	for _, d := range t.PlanDays {
		if d != nil {
			trip.PlanDays = append(trip.PlanDays, planDayToModel(d))
		}
	}
	return trip
}

func tripToProto(t *models.Trip) *tripv1.Trip {
	out := &tripv1.Trip{
		Id:                 t.ID,
		Title:              t.Title,
		Destination:        t.Destination,
		BaseCurrency:       t.BaseCurrency,
		SettlementCurrency: t.SettlementCurrency,
		FxRate:             t.FXRate,
		StartDate:          t.StartDate,
		EndDate:            t.EndDate,
		Members:            t.Members,
		ExternalNames:      t.ExternalNames,
		Version:            t.Version,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
	for _, e := range t.Expenses {
		out.Expenses = append(out.Expenses, expenseToProto(e))
	}
	for _, b := range t.Bookings {
		out.Bookings = append(out.Bookings, bookingToProto(b))
	}
	for _, d := range t.PlanDays {
		out.PlanDays = append(out.PlanDays, planDayToProto(d))
	}
	return out
}

func summaryToProto(s models.TripSummary) *tripv1.TripSummary {
	return &tripv1.TripSummary{
		Id:          s.ID,
		Title:       s.Title,
		Destination: s.Destination,
		Members:     s.Members,
		Version:     s.Version,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func warningsToProto(ws []calculator.Warning) []*tripv1.Warning {
	out := make([]*tripv1.Warning, 0, len(ws))
	for _, w := range ws {
		out = append(out, &tripv1.Warning{
			TransactionId: w.TransactionID,
			Kind:          string(w.Kind),
			Message:       w.Message,
			Suggestion:    w.Suggestion,
		})
	}
	return out
}

func balancesToProto(trip *models.Trip, res *calculator.Result) *tripv1.GetBalancesResponse {
	out := &tripv1.GetBalancesResponse{
		SettlementCurrency: trip.SettlementCurrency,
		Balances:           res.Balances,
		Spending:           res.Spending,
		Members:            make([]*tripv1.MemberBalance, 0, len(res.Members)),
		Transfers:          make([]*tripv1.Transfer, 0, len(res.Transfers)),
		Warnings:           warningsToProto(res.Warnings),
		Version:            trip.Version,
	}
	for _, mb := range res.Members {
		out.Members = append(out.Members, &tripv1.MemberBalance{
			MemberName: mb.MemberName,
			NetBalance: mb.NetBalance,
			TotalPaid:  mb.TotalPaid,
			TotalOwed:  mb.TotalOwed,
			Spending:   mb.Spending,
			External:   mb.External,
		})
	}
	for _, t := range res.Transfers {
		out.Transfers = append(out.Transfers, &tripv1.Transfer{From: t.From, To: t.To, Amount: t.Amount})
	}
	return out
}

func transactionToProto(tx models.Transaction) *tripv1.Transaction {
	return &tripv1.Transaction{
		Id:            tx.ID,
		Source:        string(tx.Source),
		Category:      tx.Category,
		Description:   tx.Description,
		Date:          tx.Date,
		Amount:        amountToProto(tx.Amount),
		Payer:         tx.Payer(),
		PaymentMethod: string(tx.PaymentMethod),
		IsSettlement:  tx.IsSettlement,
	}
}

func amountToProto(a currency.Amount) *tripv1.Amount {
	return &tripv1.Amount{Local: a.Local, Rate: a.Rate, Settlement: a.Settlement}
}

func amountToModel(a *tripv1.Amount) currency.Amount {
	if a == nil {
		return currency.Amount{Rate: 1}
	}
	return currency.Amount{
		Local:      currency.Sanitize(a.Local),
		Rate:       currency.Sanitize(a.Rate),
		Settlement: currency.Sanitize(a.Settlement),
	}
}
