// Copyright 2023 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package premium

// The accessor pairs, one per catalog dataset. Each is a fixed composition
// of the engine stages against the dataset's descriptor: the plain form
// returns the provider's records, the DF form additionally tabularizes them.

import (
	"context"

	"github.com/stockparfait/iexcloud/iex"
	"github.com/stockparfait/iexcloud/table"
)

// AccountingQualityAndRiskMatrix fetches the Audit Analytics accounting
// quality and risk matrix scores.
func AccountingQualityAndRiskMatrix(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "accountingQualityAndRiskMatrix", params)
}

// AccountingQualityAndRiskMatrixDF is the tabular form of
// AccountingQualityAndRiskMatrix.
func AccountingQualityAndRiskMatrixDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "accountingQualityAndRiskMatrix", params)
}

// DirectorAndOfficerChanges fetches the Audit Analytics director and officer
// change events.
func DirectorAndOfficerChanges(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "directorAndOfficerChanges", params)
}

// DirectorAndOfficerChangesDF is the tabular form of
// DirectorAndOfficerChanges.
func DirectorAndOfficerChangesDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "directorAndOfficerChanges", params)
}

// Brain30DaySentiment fetches the Brain Company 30-day sentiment scores.
func Brain30DaySentiment(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "brain30DaySentiment", params)
}

// Brain30DaySentimentDF is the tabular form of Brain30DaySentiment.
func Brain30DaySentimentDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "brain30DaySentiment", params)
}

// Brain7DaySentiment fetches the Brain Company 7-day sentiment scores.
func Brain7DaySentiment(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "brain7DaySentiment", params)
}

// Brain7DaySentimentDF is the tabular form of Brain7DaySentiment.
func Brain7DaySentimentDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "brain7DaySentiment", params)
}

// Brain21DayMLReturnRanking fetches the Brain Company 21-day ML return
// ranking.
func Brain21DayMLReturnRanking(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "brain21DayMLReturnRanking", params)
}

// Brain21DayMLReturnRankingDF is the tabular form of
// Brain21DayMLReturnRanking.
func Brain21DayMLReturnRankingDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "brain21DayMLReturnRanking", params)
}

// Brain10DayMLReturnRanking fetches the Brain Company 10-day ML return
// ranking.
func Brain10DayMLReturnRanking(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "brain10DayMLReturnRanking", params)
}

// Brain10DayMLReturnRankingDF is the tabular form of
// Brain10DayMLReturnRanking.
func Brain10DayMLReturnRankingDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "brain10DayMLReturnRanking", params)
}

// Brain5DayMLReturnRanking fetches the Brain Company 5-day ML return ranking.
func Brain5DayMLReturnRanking(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "brain5DayMLReturnRanking", params)
}

// Brain5DayMLReturnRankingDF is the tabular form of Brain5DayMLReturnRanking.
func Brain5DayMLReturnRankingDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "brain5DayMLReturnRanking", params)
}

// Brain3DayMLReturnRanking fetches the Brain Company 3-day ML return ranking.
func Brain3DayMLReturnRanking(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "brain3DayMLReturnRanking", params)
}

// Brain3DayMLReturnRankingDF is the tabular form of Brain3DayMLReturnRanking.
func Brain3DayMLReturnRankingDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "brain3DayMLReturnRanking", params)
}

// Brain2DayMLReturnRanking fetches the Brain Company 2-day ML return ranking.
func Brain2DayMLReturnRanking(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "brain2DayMLReturnRanking", params)
}

// Brain2DayMLReturnRankingDF is the tabular form of Brain2DayMLReturnRanking.
func Brain2DayMLReturnRankingDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "brain2DayMLReturnRanking", params)
}

// BrainLanguageMetricsOnCompanyFilingsAll fetches the Brain Company language
// metrics on company filings, including historical versions.
func BrainLanguageMetricsOnCompanyFilingsAll(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "brainLanguageMetricsOnCompanyFilingsAll", params)
}

// BrainLanguageMetricsOnCompanyFilingsAllDF is the tabular form of
// BrainLanguageMetricsOnCompanyFilingsAll.
func BrainLanguageMetricsOnCompanyFilingsAllDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "brainLanguageMetricsOnCompanyFilingsAll", params)
}

// BrainLanguageMetricsOnCompanyFilings fetches the Brain Company language
// metrics on the latest company filings.
func BrainLanguageMetricsOnCompanyFilings(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "brainLanguageMetricsOnCompanyFilings", params)
}

// BrainLanguageMetricsOnCompanyFilingsDF is the tabular form of
// BrainLanguageMetricsOnCompanyFilings.
func BrainLanguageMetricsOnCompanyFilingsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "brainLanguageMetricsOnCompanyFilings", params)
}

// BrainLanguageMetricsOnCompanyFilingsDifferenceAll fetches the period-over-
// period differences of the Brain Company language metrics, including
// historical versions.
func BrainLanguageMetricsOnCompanyFilingsDifferenceAll(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "brainLanguageMetricsOnCompanyFilingsDifferenceAll", params)
}

// BrainLanguageMetricsOnCompanyFilingsDifferenceAllDF is the tabular form of
// BrainLanguageMetricsOnCompanyFilingsDifferenceAll.
func BrainLanguageMetricsOnCompanyFilingsDifferenceAllDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "brainLanguageMetricsOnCompanyFilingsDifferenceAll", params)
}

// BrainLanguageMetricsOnCompanyFilingsDifference fetches the period-over-
// period differences of the Brain Company language metrics on the latest
// filings.
func BrainLanguageMetricsOnCompanyFilingsDifference(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "brainLanguageMetricsOnCompanyFilingsDifference", params)
}

// BrainLanguageMetricsOnCompanyFilingsDifferenceDF is the tabular form of
// BrainLanguageMetricsOnCompanyFilingsDifference.
func BrainLanguageMetricsOnCompanyFilingsDifferenceDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "brainLanguageMetricsOnCompanyFilingsDifference", params)
}

// CityFalconNews fetches the CityFalcon curated news stream.
func CityFalconNews(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "cityFalconNews", params)
}

// CityFalconNewsDF is the tabular form of CityFalconNews.
func CityFalconNewsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "cityFalconNews", params)
}

// CAM1 fetches the ExtractAlpha cross-asset model 1 scores.
func CAM1(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "cam1", params)
}

// CAM1DF is the tabular form of CAM1.
func CAM1DF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "cam1", params)
}

// ESGCFPBComplaints fetches the ExtractAlpha ESG feed of CFPB consumer
// complaints.
func ESGCFPBComplaints(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "esgCFPBComplaints", params)
}

// ESGCFPBComplaintsDF is the tabular form of ESGCFPBComplaints.
func ESGCFPBComplaintsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "esgCFPBComplaints", params)
}

// ESGCPSCRecalls fetches the ExtractAlpha ESG feed of CPSC product recalls.
func ESGCPSCRecalls(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "esgCPSCRecalls", params)
}

// ESGCPSCRecallsDF is the tabular form of ESGCPSCRecalls.
func ESGCPSCRecallsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "esgCPSCRecalls", params)
}

// ESGDOLVisaApplications fetches the ExtractAlpha ESG feed of DOL visa
// applications.
func ESGDOLVisaApplications(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "esgDOLVisaApplications", params)
}

// ESGDOLVisaApplicationsDF is the tabular form of ESGDOLVisaApplications.
func ESGDOLVisaApplicationsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "esgDOLVisaApplications", params)
}

// ESGEPAEnforcements fetches the ExtractAlpha ESG feed of EPA enforcement
// actions.
func ESGEPAEnforcements(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "esgEPAEnforcements", params)
}

// ESGEPAEnforcementsDF is the tabular form of ESGEPAEnforcements.
func ESGEPAEnforcementsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "esgEPAEnforcements", params)
}

// ESGEPAMilestones fetches the ExtractAlpha ESG feed of EPA milestones.
func ESGEPAMilestones(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "esgEPAMilestones", params)
}

// ESGEPAMilestonesDF is the tabular form of ESGEPAMilestones.
func ESGEPAMilestonesDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "esgEPAMilestones", params)
}

// ESGFECIndividualCampaignContributions fetches the ExtractAlpha ESG feed of
// FEC individual campaign contributions.
func ESGFECIndividualCampaignContributions(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "esgFECIndividualCampaignContributions", params)
}

// ESGFECIndividualCampaignContributionsDF is the tabular form of
// ESGFECIndividualCampaignContributions.
func ESGFECIndividualCampaignContributionsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "esgFECIndividualCampaignContributions", params)
}

// ESGOSHAInspections fetches the ExtractAlpha ESG feed of OSHA inspections.
func ESGOSHAInspections(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "esgOSHAInspections", params)
}

// ESGOSHAInspectionsDF is the tabular form of ESGOSHAInspections.
func ESGOSHAInspectionsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "esgOSHAInspections", params)
}

// ESGSenateLobbying fetches the ExtractAlpha ESG feed of Senate lobbying
// disclosures.
func ESGSenateLobbying(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "esgSenateLobbying", params)
}

// ESGSenateLobbyingDF is the tabular form of ESGSenateLobbying.
func ESGSenateLobbyingDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "esgSenateLobbying", params)
}

// ESGUSASpending fetches the ExtractAlpha ESG feed of USA spending awards.
func ESGUSASpending(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "esgUSASpending", params)
}

// ESGUSASpendingDF is the tabular form of ESGUSASpending.
func ESGUSASpendingDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "esgUSASpending", params)
}

// ESGUSPTOPatentApplications fetches the ExtractAlpha ESG feed of USPTO
// patent applications.
func ESGUSPTOPatentApplications(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "esgUSPTOPatentApplications", params)
}

// ESGUSPTOPatentApplicationsDF is the tabular form of
// ESGUSPTOPatentApplications.
func ESGUSPTOPatentApplicationsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "esgUSPTOPatentApplications", params)
}

// ESGUSPTOPatentGrants fetches the ExtractAlpha ESG feed of USPTO patent
// grants.
func ESGUSPTOPatentGrants(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "esgUSPTOPatentGrants", params)
}

// ESGUSPTOPatentGrantsDF is the tabular form of ESGUSPTOPatentGrants.
func ESGUSPTOPatentGrantsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "esgUSPTOPatentGrants", params)
}

// TacticalModel1 fetches the ExtractAlpha tactical model 1 scores.
func TacticalModel1(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "tacticalModel1", params)
}

// TacticalModel1DF is the tabular form of TacticalModel1.
func TacticalModel1DF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "tacticalModel1", params)
}

// SimilarityIndex fetches the Fraud Factors filing similarity index.
func SimilarityIndex(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "similarityIndex", params)
}

// SimilarityIndexDF is the tabular form of SimilarityIndex.
func SimilarityIndexDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "similarityIndex", params)
}

// NonTimelyFilings fetches the Fraud Factors non-timely filing events.
func NonTimelyFilings(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "nonTimelyFilings", params)
}

// NonTimelyFilingsDF is the tabular form of NonTimelyFilings.
func NonTimelyFilingsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "nonTimelyFilings", params)
}

// KScore fetches the Kavout K Score for US equities.
func KScore(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "kScore", params)
}

// KScoreDF is the tabular form of KScore.
func KScoreDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "kScore", params)
}

// KScoreChina fetches the Kavout K Score for China A-shares.
func KScoreChina(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "kScoreChina", params)
}

// KScoreChinaDF is the tabular form of KScoreChina.
func KScoreChinaDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "kScoreChina", params)
}

// PrecisionAlphaPriceDynamics fetches the Precision Alpha price dynamics.
func PrecisionAlphaPriceDynamics(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "precisionAlphaPriceDynamics", params)
}

// PrecisionAlphaPriceDynamicsDF is the tabular form of
// PrecisionAlphaPriceDynamics.
func PrecisionAlphaPriceDynamicsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "precisionAlphaPriceDynamics", params)
}

// SocialSentiment fetches the StockTwits message-based social sentiment.
func SocialSentiment(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "socialSentiment", params)
}

// SocialSentimentDF is the tabular form of SocialSentiment.
func SocialSentimentDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "socialSentiment", params)
}

// ValuEngineStockResearchReport fetches the ValuEngine stock research
// reports.
func ValuEngineStockResearchReport(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "valuEngineStockResearchReport", params)
}

// ValuEngineStockResearchReportDF is the tabular form of
// ValuEngineStockResearchReport.
func ValuEngineStockResearchReportDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "valuEngineStockResearchReport", params)
}

// AnalystDays fetches the Wall Street Horizon analyst day calendar.
func AnalystDays(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "analystDays", params)
}

// AnalystDaysDF is the tabular form of AnalystDays.
func AnalystDaysDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "analystDays", params)
}

// BoardOfDirectorsMeeting fetches the Wall Street Horizon board of directors
// meeting calendar.
func BoardOfDirectorsMeeting(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "boardOfDirectorsMeeting", params)
}

// BoardOfDirectorsMeetingDF is the tabular form of BoardOfDirectorsMeeting.
func BoardOfDirectorsMeetingDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "boardOfDirectorsMeeting", params)
}

// BusinessUpdates fetches the Wall Street Horizon business update calendar.
func BusinessUpdates(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "businessUpdates", params)
}

// BusinessUpdatesDF is the tabular form of BusinessUpdates.
func BusinessUpdatesDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "businessUpdates", params)
}

// Buybacks fetches the Wall Street Horizon buyback calendar.
func Buybacks(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "buybacks", params)
}

// BuybacksDF is the tabular form of Buybacks.
func BuybacksDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "buybacks", params)
}

// CapitalMarketsDay fetches the Wall Street Horizon capital markets day
// calendar.
func CapitalMarketsDay(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "capitalMarketsDay", params)
}

// CapitalMarketsDayDF is the tabular form of CapitalMarketsDay.
func CapitalMarketsDayDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "capitalMarketsDay", params)
}

// CompanyTravel fetches the Wall Street Horizon company travel calendar.
func CompanyTravel(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "companyTravel", params)
}

// CompanyTravelDF is the tabular form of CompanyTravel.
func CompanyTravelDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "companyTravel", params)
}

// FilingDueDates fetches the Wall Street Horizon filing due date calendar.
func FilingDueDates(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "filingDueDates", params)
}

// FilingDueDatesDF is the tabular form of FilingDueDates.
func FilingDueDatesDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "filingDueDates", params)
}

// FiscalQuarterEnd fetches the Wall Street Horizon fiscal quarter end
// calendar.
func FiscalQuarterEnd(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "fiscalQuarterEnd", params)
}

// FiscalQuarterEndDF is the tabular form of FiscalQuarterEnd.
func FiscalQuarterEndDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "fiscalQuarterEnd", params)
}

// Forum fetches the Wall Street Horizon forum calendar.
func Forum(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "forum", params)
}

// ForumDF is the tabular form of Forum.
func ForumDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "forum", params)
}

// GeneralConference fetches the Wall Street Horizon general conference
// calendar.
func GeneralConference(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "generalConference", params)
}

// GeneralConferenceDF is the tabular form of GeneralConference.
func GeneralConferenceDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "generalConference", params)
}

// FDAAdvisoryCommitteeMeetings fetches the Wall Street Horizon FDA advisory
// committee meeting calendar.
func FDAAdvisoryCommitteeMeetings(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "fdaAdvisoryCommitteeMeetings", params)
}

// FDAAdvisoryCommitteeMeetingsDF is the tabular form of
// FDAAdvisoryCommitteeMeetings.
func FDAAdvisoryCommitteeMeetingsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "fdaAdvisoryCommitteeMeetings", params)
}

// Holidays fetches the Wall Street Horizon holiday calendar.
func Holidays(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "holidays", params)
}

// HolidaysDF is the tabular form of Holidays.
func HolidaysDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "holidays", params)
}

// IndexChanges fetches the Wall Street Horizon index change calendar.
func IndexChanges(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "indexChanges", params)
}

// IndexChangesDF is the tabular form of IndexChanges.
func IndexChangesDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "indexChanges", params)
}

// IPOs fetches the Wall Street Horizon initial public offering calendar.
func IPOs(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "ipos", params)
}

// IPOsDF is the tabular form of IPOs.
func IPOsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "ipos", params)
}

// LegalActions fetches the Wall Street Horizon legal action calendar.
func LegalActions(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "legalActions", params)
}

// LegalActionsDF is the tabular form of LegalActions.
func LegalActionsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "legalActions", params)
}

// MergersAndAcquisitions fetches the Wall Street Horizon merger and
// acquisition calendar.
func MergersAndAcquisitions(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "mergersAndAcquisitions", params)
}

// MergersAndAcquisitionsDF is the tabular form of MergersAndAcquisitions.
func MergersAndAcquisitionsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "mergersAndAcquisitions", params)
}

// ProductEvents fetches the Wall Street Horizon product event calendar.
func ProductEvents(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "productEvents", params)
}

// ProductEventsDF is the tabular form of ProductEvents.
func ProductEventsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "productEvents", params)
}

// ResearchAndDevelopmentDays fetches the Wall Street Horizon R&D day
// calendar.
func ResearchAndDevelopmentDays(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "researchAndDevelopmentDays", params)
}

// ResearchAndDevelopmentDaysDF is the tabular form of
// ResearchAndDevelopmentDays.
func ResearchAndDevelopmentDaysDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "researchAndDevelopmentDays", params)
}

// SameStoreSales fetches the Wall Street Horizon same store sales calendar.
func SameStoreSales(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "sameStoreSales", params)
}

// SameStoreSalesDF is the tabular form of SameStoreSales.
func SameStoreSalesDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "sameStoreSales", params)
}

// SecondaryOfferings fetches the Wall Street Horizon secondary offering
// calendar.
func SecondaryOfferings(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "secondaryOfferings", params)
}

// SecondaryOfferingsDF is the tabular form of SecondaryOfferings.
func SecondaryOfferingsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "secondaryOfferings", params)
}

// Seminars fetches the Wall Street Horizon seminar calendar.
func Seminars(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "seminars", params)
}

// SeminarsDF is the tabular form of Seminars.
func SeminarsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "seminars", params)
}

// ShareholderMeetings fetches the Wall Street Horizon shareholder meeting
// calendar.
func ShareholderMeetings(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "shareholderMeetings", params)
}

// ShareholderMeetingsDF is the tabular form of ShareholderMeetings.
func ShareholderMeetingsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "shareholderMeetings", params)
}

// SummitMeetings fetches the Wall Street Horizon summit meeting calendar.
func SummitMeetings(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "summitMeetings", params)
}

// SummitMeetingsDF is the tabular form of SummitMeetings.
func SummitMeetingsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "summitMeetings", params)
}

// TradeShows fetches the Wall Street Horizon trade show calendar.
func TradeShows(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "tradeShows", params)
}

// TradeShowsDF is the tabular form of TradeShows.
func TradeShowsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "tradeShows", params)
}

// WitchingHours fetches the Wall Street Horizon witching hours calendar.
func WitchingHours(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "witchingHours", params)
}

// WitchingHoursDF is the tabular form of WitchingHours.
func WitchingHoursDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "witchingHours", params)
}

// Workshops fetches the Wall Street Horizon workshop calendar.
func Workshops(ctx context.Context, params iex.Params) ([]iex.Record, error) {
	return Call(ctx, "workshops", params)
}

// WorkshopsDF is the tabular form of Workshops.
func WorkshopsDF(ctx context.Context, params iex.Params) (*table.Table, error) {
	return CallDF(ctx, "workshops", params)
}
