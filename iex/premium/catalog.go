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

import "github.com/stockparfait/iexcloud/iex"

// catalog of the premium datasets. Adding a dataset is purely data: one more
// descriptor here plus its accessor pair; the engine never changes.
var catalog = []*iex.Descriptor{
	// Audit Analytics.
	timeSeries("accountingQualityAndRiskMatrix",
		"PREMIUM_AUDIT_ANALYTICS_ACCOUNTING_QUALITY_RISK_MATRIX"),
	timeSeries("directorAndOfficerChanges",
		"PREMIUM_AUDIT_ANALYTICS_DIRECTOR_OFFICER_CHANGES"),

	// Brain Company.
	timeSeries("brain30DaySentiment", "PREMIUM_BRAIN_SENTIMENT_30_DAYS"),
	timeSeries("brain7DaySentiment", "PREMIUM_BRAIN_SENTIMENT_7_DAYS"),
	timeSeries("brain21DayMLReturnRanking", "PREMIUM_BRAIN_RANKING_21_DAYS"),
	timeSeries("brain10DayMLReturnRanking", "PREMIUM_BRAIN_RANKING_10_DAYS"),
	timeSeries("brain5DayMLReturnRanking", "PREMIUM_BRAIN_RANKING_5_DAYS"),
	timeSeries("brain3DayMLReturnRanking", "PREMIUM_BRAIN_RANKING_3_DAYS"),
	timeSeries("brain2DayMLReturnRanking", "PREMIUM_BRAIN_RANKING_2_DAYS"),
	timeSeries("brainLanguageMetricsOnCompanyFilingsAll",
		"PREMIUM_BRAIN_LANGUAGE_METRICS_ALL"),
	timeSeries("brainLanguageMetricsOnCompanyFilings",
		"PREMIUM_BRAIN_LANGUAGE_METRICS"),
	timeSeries("brainLanguageMetricsOnCompanyFilingsDifferenceAll",
		"PREMIUM_BRAIN_LANGUAGE_DIFFERENCES_ALL"),
	timeSeries("brainLanguageMetricsOnCompanyFilingsDifference",
		"PREMIUM_BRAIN_LANGUAGE_DIFFERENCES"),

	// CityFalcon.
	timeSeries("cityFalconNews", "PREMIUM_CITYFALCON_NEWS"),

	// ExtractAlpha.
	timeSeries("cam1", "PREMIUM_EXTRACT_ALPHA_CAM"),
	timeSeries("esgCFPBComplaints", "PREMIUM_EXTRACT_ALPHA_ESG_CFPB_COMPLAINTS"),
	timeSeries("esgCPSCRecalls", "PREMIUM_EXTRACT_ALPHA_ESG_CPSC_RECALLS"),
	timeSeries("esgDOLVisaApplications",
		"PREMIUM_EXTRACT_ALPHA_ESG_DOL_VISA_APPLICATIONS"),
	timeSeries("esgEPAEnforcements", "PREMIUM_EXTRACT_ALPHA_ESG_EPA_ENFORCEMENTS"),
	timeSeries("esgEPAMilestones", "PREMIUM_EXTRACT_ALPHA_ESG_EPA_MILESTONES"),
	timeSeries("esgFECIndividualCampaignContributions",
		"PREMIUM_EXTRACT_ALPHA_ESG_FEC_INDIVIDUAL_CAMPAIGN_CONTRIBUTIONS"),
	timeSeries("esgOSHAInspections", "PREMIUM_EXTRACT_ALPHA_ESG_OSHA_INSPECTIONS"),
	timeSeries("esgSenateLobbying", "PREMIUM_EXTRACT_ALPHA_ESG_SENATE_LOBBYING"),
	timeSeries("esgUSASpending", "PREMIUM_EXTRACT_ALPHA_ESG_USA_SPENDING"),
	timeSeries("esgUSPTOPatentApplications",
		"PREMIUM_EXTRACT_ALPHA_ESG_USPTO_PATENT_APPLICATIONS"),
	timeSeries("esgUSPTOPatentGrants",
		"PREMIUM_EXTRACT_ALPHA_ESG_USPTO_PATENT_GRANTS"),
	timeSeries("tacticalModel1", "PREMIUM_EXTRACT_ALPHA_TM"),

	// Fraud Factors.
	timeSeries("similarityIndex", "PREMIUM_FRAUD_FACTORS_SIMILARITY_INDEX"),
	timeSeries("nonTimelyFilings", "PREMIUM_FRAUD_FACTORS_NON_TIMELY_FILINGS"),

	// Kavout.
	timeSeries("kScore", "PREMIUM_KAVOUT_KSCORE"),
	timeSeries("kScoreChina", "PREMIUM_KAVOUT_KSCORE_A"),

	// Precision Alpha.
	timeSeries("precisionAlphaPriceDynamics",
		"PREMIUM_PRECISION_ALPHA_PRICE_DYNAMICS"),

	// StockTwits.
	timeSeries("socialSentiment", "PREMIUM_STOCKTWITS_SENTIMENT"),

	// ValuEngine.
	timeSeries("valuEngineStockResearchReport", "VALUENGINE_REPORT"),

	// Wall Street Horizon.
	timeSeries("analystDays", "PREMIUM_WALLSTREETHORIZON_ANALYST_DAY"),
	timeSeries("boardOfDirectorsMeeting",
		"PREMIUM_WALLSTREETHORIZON_BOARD_OF_DIRECTORS_MEETING"),
	timeSeries("businessUpdates", "PREMIUM_WALLSTREETHORIZON_BUSINESS_UPDATE"),
	timeSeries("buybacks", "PREMIUM_WALLSTREETHORIZON_BUYBACK"),
	timeSeries("capitalMarketsDay", "PREMIUM_WALLSTREETHORIZON_CAPITAL_MARKETS_DAY"),
	timeSeries("companyTravel", "PREMIUM_WALLSTREETHORIZON_COMPANY_TRAVEL"),
	timeSeries("filingDueDates", "PREMIUM_WALLSTREETHORIZON_FILING_DUE_DATE"),
	timeSeries("fiscalQuarterEnd", "PREMIUM_WALLSTREETHORIZON_FISCAL_QUARTER_END"),
	timeSeries("forum", "PREMIUM_WALLSTREETHORIZON_FORUM"),
	timeSeries("generalConference", "PREMIUM_WALLSTREETHORIZON_GENERAL_CONFERENCE"),
	timeSeries("fdaAdvisoryCommitteeMeetings",
		"PREMIUM_WALLSTREETHORIZON_FDA_ADVISORY_COMMITTEE_MEETING"),
	timeSeries("holidays", "PREMIUM_WALLSTREETHORIZON_HOLIDAY"),
	timeSeries("indexChanges", "PREMIUM_WALLSTREETHORIZON_INDEX_CHANGE"),
	timeSeries("ipos", "PREMIUM_WALLSTREETHORIZON_INITIAL_PUBLIC_OFFERING"),
	timeSeries("legalActions", "PREMIUM_WALLSTREETHORIZON_LEGAL_ACTION"),
	timeSeries("mergersAndAcquisitions",
		"PREMIUM_WALLSTREETHORIZON_MERGER_ACQUISITION"),
	timeSeries("productEvents", "PREMIUM_WALLSTREETHORIZON_PRODUCT_EVENT"),
	timeSeries("researchAndDevelopmentDays", "PREMIUM_WALLSTREETHORIZON_RD_DAY"),
	timeSeries("sameStoreSales", "PREMIUM_WALLSTREETHORIZON_SAME_STORE_SALES"),
	timeSeries("secondaryOfferings",
		"PREMIUM_WALLSTREETHORIZON_SECONDARY_OFFERING"),
	timeSeries("seminars", "PREMIUM_WALLSTREETHORIZON_SEMINAR"),
	timeSeries("shareholderMeetings",
		"PREMIUM_WALLSTREETHORIZON_SHAREHOLDER_MEETING"),
	timeSeries("summitMeetings", "PREMIUM_WALLSTREETHORIZON_SUMMIT_MEETING"),
	timeSeries("tradeShows", "PREMIUM_WALLSTREETHORIZON_TRADE_SHOW"),
	timeSeries("witchingHours", "PREMIUM_WALLSTREETHORIZON_WITCHING_HOURS"),
	timeSeries("workshops", "PREMIUM_WALLSTREETHORIZON_WORKSHOP"),
}
